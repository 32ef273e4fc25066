package service

import (
	"socialgram/internal/config"
	"socialgram/internal/repository"
	"socialgram/internal/storage"
)

type Service struct {
	User      UserService
	Auth      AuthService
	Follow    FollowService
	Post      PostService
	Scheduler SchedulerService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, blacklist storage.TokenBlacklist) *Service {
	return &Service{
		User:      NewUserService(rep.User, storage, cfg),
		Auth:      NewAuthService(rep.User, blacklist, cfg),
		Follow:    NewFollowService(rep.Follow, rep.User),
		Post:      NewPostService(rep.Post, rep.Comment, rep.Like),
		Scheduler: NewSchedulerService(rep.Schedule, rep.Post, rep.User, cfg),
	}
}
