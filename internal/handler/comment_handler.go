package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"socialgram/internal/models"
)

type CommentResponse struct {
	CommentId string    `json:"commentId"`
	PostId    string    `json:"postId"`
	AuthorId  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func commentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		CommentId: comment.CommentID,
		PostId:    comment.PostID,
		AuthorId:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// PostComments обслуживает /api/posts/{id}/comments:
// GET список (публичный), POST добавление.
func (h *Handlers) PostComments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListComments(w, r)
	case http.MethodPost:
		h.AddComment(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	comments, err := h.PostService.ListComments(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, commentResponse(&comments[i]))
	}

	WriteSuccess(w, response, http.StatusOK)
}

// AddComment добавляет комментарий. Автор всегда берется из токена.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует содержимое комментария", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.AddComment(r.Context(), userID, postID, req.Content)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, commentResponse(comment), http.StatusCreated)
}

// CommentRouter разбирает /api/comments/{id}: PUT обновление, DELETE удаление.
func (h *Handlers) CommentRouter(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.UpdateComment(w, r)
	case http.MethodDelete:
		h.DeleteComment(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	commentID := pathParts[3]

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует содержимое комментария", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.UpdateComment(r.Context(), userID, commentID, req.Content)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, commentResponse(comment), http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	commentID := pathParts[3]

	if err := h.PostService.DeleteComment(r.Context(), userID, commentID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusNoContent)
}
