package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialgram/internal/config"
	"socialgram/internal/repository"
	"socialgram/internal/service"
)

type Handlers struct {
	AuthService      service.AuthService
	UserService      service.UserService
	FollowService    service.FollowService
	PostService      service.PostService
	SchedulerService service.SchedulerService
	UserRepo         repository.UserRepository
	FollowRepo       repository.FollowRepository
	PostRepo         repository.PostRepository
	CommentRepo      repository.CommentRepository
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		UserService:      service.User,
		FollowService:    service.Follow,
		PostService:      service.Post,
		SchedulerService: service.Scheduler,
		UserRepo:         repo.User,
		FollowRepo:       repo.Follow,
		PostRepo:         repo.Post,
		CommentRepo:      repo.Comment,
		Cfg:              config,
		Validate:         validator.New(),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "socialgram API"})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// actorID достает идентификатор текущего пользователя из контекста запроса.
func actorID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}
