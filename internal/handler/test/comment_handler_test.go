package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"socialgram/internal/apperrors"
	handlers "socialgram/internal/handler"
	"socialgram/internal/models"
)

func TestPostCommentsHandler(t *testing.T) {
	t.Run("Список комментариев без аутентификации", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("ListComments", mock.Anything, "post-1").Return([]models.Comment{
			{CommentID: "c1", PostID: "post-1", AuthorID: "alice", Content: "первый"},
			{CommentID: "c2", PostID: "post-1", AuthorID: "bob", Content: "второй"},
		}, nil)

		// чтение комментариев публичное
		req := httptest.NewRequest(http.MethodGet, "/api/posts/post-1/comments", nil)
		rec := httptest.NewRecorder()

		th.h.PostRouter(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response []handlers.CommentResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		assert.Equal(t, "первый", response[0].Content)
	})

	t.Run("Добавление комментария", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("AddComment", mock.Anything, "alice", "post-1", "отличный пост").Return(&models.Comment{
			CommentID: "c1",
			PostID:    "post-1",
			AuthorID:  "alice",
			Content:   "отличный пост",
		}, nil)

		body := strings.NewReader(`{"content": "отличный пост"}`)
		req := withActor(httptest.NewRequest(http.MethodPost, "/api/posts/post-1/comments", body), "alice")
		rec := httptest.NewRecorder()

		th.h.PostRouter(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response handlers.CommentResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.AuthorId)
		th.post.AssertExpectations(t)
	})

	t.Run("Комментарий к несуществующему посту", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("AddComment", mock.Anything, "alice", "nope", "текст").
			Return(nil, fmt.Errorf("пост не найден: %w", apperrors.ErrNotFound))

		body := strings.NewReader(`{"content": "текст"}`)
		req := withActor(httptest.NewRequest(http.MethodPost, "/api/posts/nope/comments", body), "alice")
		rec := httptest.NewRecorder()

		th.h.PostRouter(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCommentRouterHandler(t *testing.T) {
	t.Run("Обновление своего комментария", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("UpdateComment", mock.Anything, "alice", "c1", "исправленный").Return(&models.Comment{
			CommentID: "c1",
			AuthorID:  "alice",
			Content:   "исправленный",
		}, nil)

		body := strings.NewReader(`{"content": "исправленный"}`)
		req := withActor(httptest.NewRequest(http.MethodPut, "/api/comments/c1", body), "alice")
		rec := httptest.NewRecorder()

		th.h.CommentRouter(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "исправленный")
	})

	t.Run("Чужой комментарий", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("UpdateComment", mock.Anything, "intruder", "c1", "взлом").
			Return(nil, fmt.Errorf("только автор может изменить или удалить: %w", apperrors.ErrPermissionDenied))

		body := strings.NewReader(`{"content": "взлом"}`)
		req := withActor(httptest.NewRequest(http.MethodPut, "/api/comments/c1", body), "intruder")
		rec := httptest.NewRecorder()

		th.h.CommentRouter(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Удаление комментария", func(t *testing.T) {
		th := newTestHandlers()

		th.post.On("DeleteComment", mock.Anything, "alice", "c1").Return(nil)

		req := withActor(httptest.NewRequest(http.MethodDelete, "/api/comments/c1", nil), "alice")
		rec := httptest.NewRecorder()

		th.h.CommentRouter(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Пустой идентификатор", func(t *testing.T) {
		th := newTestHandlers()

		req := withActor(httptest.NewRequest(http.MethodDelete, "/api/comments/", nil), "alice")
		rec := httptest.NewRecorder()

		th.h.CommentRouter(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
