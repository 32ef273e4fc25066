package apperrors

import (
	"errors"
)

// Сентинельные ошибки доменного слоя. Репозитории и сервисы оборачивают их
// через fmt.Errorf("%w: ..."), хендлеры сопоставляют через errors.Is.
var (
	ErrNotFound         = errors.New("не найдено")
	ErrPermissionDenied = errors.New("доступ запрещен")
	ErrConflict         = errors.New("конфликт")
	ErrValidation       = errors.New("неверные данные")
)

// Kind возвращает машиночитаемый вид ошибки для тела ответа.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	default:
		return "internal"
	}
}
