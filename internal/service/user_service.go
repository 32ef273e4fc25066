package service

import (
	"context"
	"fmt"
	"io"

	"socialgram/internal/config"
	"socialgram/internal/models"
	"socialgram/internal/repository"
	"socialgram/internal/storage"
)

type UpdateProfileRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
}

type UserService interface {
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	DeleteUser(ctx context.Context, userID string) error
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	user.Email = req.Email
	user.Bio = req.Bio

	// update user
	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return err
	}

	return nil
}

// DeleteUser удаляет профиль вместе с его постами, комментариями,
// лайками и подписками (каскад на уровне схемы).
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	err = s.userRepo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		s.storage.DeleteAvatar(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения аватара в БД: %w", err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
