package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"socialgram/internal/models"
)

type PostResponse struct {
	PostId    string    `json:"postId"`
	AuthorId  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LikeResponse struct {
	LikeId    string    `json:"likeId"`
	PostId    string    `json:"postId"`
	UserId    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ScheduleResponse struct {
	ScheduleId  string    `json:"scheduleId"`
	AuthorId    string    `json:"authorId"`
	Content     string    `json:"content"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
}

func postResponse(post *models.Post) PostResponse {
	return PostResponse{
		PostId:    post.PostID,
		AuthorId:  post.AuthorID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func postList(posts []models.Post) []PostResponse {
	response := make([]PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, postResponse(&posts[i]))
	}
	return response
}

// Posts обслуживает /api/posts: GET лента с фильтром, POST создание.
func (h *Handlers) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetPosts(w, r)
	case http.MethodPost:
		h.CreatePost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var posts []models.Post
	var err error

	// filter selects the feed: all posts, my own, following feed or liked
	switch r.URL.Query().Get("filter") {
	case "my":
		posts, err = h.PostRepo.GetByAuthorID(r.Context(), userID)
	case "following":
		posts, err = h.PostRepo.GetFollowingFeed(r.Context(), userID)
	case "liked":
		posts, err = h.PostRepo.GetLikedByUser(r.Context(), userID)
	default:
		posts, err = h.PostRepo.GetAll(r.Context())
	}

	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, postList(posts), http.StatusOK)
}

// CreatePost создает пост. Автор всегда берется из токена.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует содержимое поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.Content)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, postResponse(post), http.StatusCreated)
}

// PostRouter разбирает /api/posts/...: поиск, планирование,
// операции над постом и вложенные like/unlike/comments.
func (h *Handlers) PostRouter(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	switch pathParts[3] {
	case "search":
		h.SearchPosts(w, r)
		return
	case "schedule":
		h.SchedulePost(w, r)
		return
	}

	if len(pathParts) >= 5 {
		switch pathParts[4] {
		case "like":
			h.LikePost(w, r)
			return
		case "unlike":
			h.UnlikePost(w, r)
			return
		case "comments":
			h.PostComments(w, r)
			return
		}
	}

	switch r.Method {
	case http.MethodGet:
		h.GetPost(w, r)
	case http.MethodPut:
		h.UpdatePost(w, r)
	case http.MethodDelete:
		h.DeletePost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, postResponse(post), http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
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
		WriteError(w, "Отсутствует содержимое поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), userID, postID, req.Content)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, postResponse(post), http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	if err := h.PostService.DeletePost(r.Context(), userID, postID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	like, err := h.PostService.Like(r.Context(), userID, postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response := LikeResponse{
		LikeId:    like.LikeID,
		PostId:    like.PostID,
		UserId:    like.UserID,
		CreatedAt: like.CreatedAt,
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	postID := pathParts[3]

	if err := h.PostService.Unlike(r.Context(), userID, postID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("search")

	posts, err := h.PostRepo.Search(r.Context(), query)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, postList(posts), http.StatusOK)
}

// SchedulePost принимает отложенную публикацию и отвечает 202:
// сам пост появится, когда сработает воркер планировщика.
func (h *Handlers) SchedulePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Content     string    `json:"content" validate:"required"`
		ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Content == "" || req.ScheduledAt.IsZero() {
		WriteError(w, "Отсутствует содержимое или время публикации", http.StatusBadRequest)
		return
	}

	scheduled, err := h.SchedulerService.SchedulePost(r.Context(), userID, req.Content, req.ScheduledAt)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response := ScheduleResponse{
		ScheduleId:  scheduled.ScheduleID,
		AuthorId:    scheduled.AuthorID,
		Content:     scheduled.Content,
		ScheduledAt: scheduled.ScheduledAt,
		Status:      scheduled.Status,
	}

	WriteSuccess(w, response, http.StatusAccepted)
}
