package service

import (
	"context"
	"fmt"

	"socialgram/internal/apperrors"
	"socialgram/internal/models"
	"socialgram/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, actorID, targetID string) error
	Unfollow(ctx context.Context, actorID, targetID string) error
	ListFollowing(ctx context.Context, userID string) ([]models.User, error)
	ListFollowers(ctx context.Context, userID string) ([]models.User, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow подписывает actor на target. Повторная подписка не ошибка.
func (s *followService) Follow(ctx context.Context, actorID, targetID string) error {
	// target must exist
	_, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}

	if actorID == targetID {
		return fmt.Errorf("нельзя подписаться на самого себя: %w", apperrors.ErrConflict)
	}

	err = s.followRepo.Follow(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	return nil
}

// Unfollow симметричен Follow: отписка от того, на кого не подписан, не ошибка.
func (s *followService) Unfollow(ctx context.Context, actorID, targetID string) error {
	_, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}

	if actorID == targetID {
		return fmt.Errorf("нельзя отписаться от самого себя: %w", apperrors.ErrConflict)
	}

	err = s.followRepo.Unfollow(ctx, actorID, targetID)
	if err != nil {
		return err
	}

	return nil
}

func (s *followService) ListFollowing(ctx context.Context, userID string) ([]models.User, error) {
	return s.followRepo.GetFollowing(ctx, userID)
}

func (s *followService) ListFollowers(ctx context.Context, userID string) ([]models.User, error) {
	return s.followRepo.GetFollowers(ctx, userID)
}
