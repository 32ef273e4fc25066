package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"socialgram/internal/models"
	"socialgram/internal/service"
)

type ProfileResponse struct {
	UserId    string   `json:"userId"`
	Email     string   `json:"email"`
	Bio       string   `json:"bio"`
	AvatarUrl string   `json:"avatarUrl"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

type AvatarResponse struct {
	UserId    string `json:"userId"`
	AvatarUrl string `json:"avatarUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
}

// profileResponse собирает профиль вместе со списками id подписчиков и подписок,
// выводимыми из единой таблицы ребер.
func (h *Handlers) profileResponse(ctx context.Context, user *models.User) (*ProfileResponse, error) {
	followers, err := h.FollowRepo.GetFollowerIDs(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	following, err := h.FollowRepo.GetFollowingIDs(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	if followers == nil {
		followers = []string{}
	}
	if following == nil {
		following = []string{}
	}

	return &ProfileResponse{
		UserId:    user.UserID,
		Email:     user.Email,
		Bio:       user.Bio,
		AvatarUrl: user.AvatarURL,
		Followers: followers,
		Following: following,
	}, nil
}

// Me обслуживает /api/me: GET профиль, PUT обновление, DELETE удаление.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetCurrentUser(w, r)
	case http.MethodPut:
		h.UpdateProfile(w, r)
	case http.MethodDelete:
		h.DeleteProfile(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response, err := h.profileResponse(r.Context(), user)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Email string `json:"email" validate:"required,email"`
		Bio   string `json:"bio"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// email verification
	patternEmail := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, errorEmail := regexp.MatchString(patternEmail, req.Email)
	if req.Email == "" || errorEmail != nil || !matched {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdateProfileRequest{
		UserID: userID,
		Email:  req.Email,
		Bio:    req.Bio,
	}

	if err := h.UserService.UpdateProfile(r.Context(), serviceReq); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Профиль обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Профиль удален"}, http.StatusNoContent)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}

	// getting the file
	file, handler, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats image
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	// check formats
	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UploadAvatar(r.Context(), userID, handler.Filename, file, handler.Size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response := AvatarResponse{
		UserId:    user.UserID,
		AvatarUrl: user.AvatarURL,
		FileName:  handler.Filename,
		FileSize:  handler.Size,
		MimeType:  contentType,
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) ListFollowing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	users, err := h.FollowService.ListFollowing(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.userList(users), http.StatusOK)
}

func (h *Handlers) ListFollowers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	users, err := h.FollowService.ListFollowers(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.userList(users), http.StatusOK)
}

func (h *Handlers) userList(users []models.User) []UserResponse {
	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, UserResponse{
			UserId:    user.UserID,
			Email:     user.Email,
			Bio:       user.Bio,
			AvatarUrl: user.AvatarURL,
		})
	}
	return response
}

// UserRouter разбирает /api/users/...: поиск, профиль по id, подписка.
func (h *Handlers) UserRouter(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if pathParts[3] == "search" {
		h.SearchUsers(w, r)
		return
	}

	if len(pathParts) >= 5 && pathParts[4] == "follow" {
		h.FollowUnfollow(w, r)
		return
	}

	h.GetUser(w, r)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	userID := pathParts[3]

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response, err := h.profileResponse(r.Context(), user)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, response, http.StatusOK)
}

// FollowUnfollow обслуживает POST /api/users/{id}/follow с действием в теле.
func (h *Handlers) FollowUnfollow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	currentUserID, ok := actorID(r)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	targetID := pathParts[3]

	var req struct {
		Action string `json:"action" validate:"required,oneof=follow unfollow"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "follow":
		if err := h.FollowService.Follow(r.Context(), currentUserID, targetID); err != nil {
			WriteAppError(w, err)
			return
		}
		WriteSuccess(w, MessageResponse{Message: "Подписка оформлена"}, http.StatusOK)
	case "unfollow":
		if err := h.FollowService.Unfollow(r.Context(), currentUserID, targetID); err != nil {
			WriteAppError(w, err)
			return
		}
		WriteSuccess(w, MessageResponse{Message: "Подписка отменена"}, http.StatusOK)
	default:
		WriteError(w, "Неверное действие", http.StatusBadRequest)
	}
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("search")

	users, err := h.UserRepo.Search(r.Context(), query)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, h.userList(users), http.StatusOK)
}
