package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialgram/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteAppError сопоставляет доменную ошибку с HTTP-статусом.
func WriteAppError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPermissionDenied):
		statusCode = http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrValidation):
		statusCode = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Kind: apperrors.Kind(err)})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if statusCode != http.StatusNoContent && data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
