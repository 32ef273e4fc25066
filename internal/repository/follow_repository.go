package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialgram/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow добавляет ребро подписки. Повторная подписка не ошибка (ON CONFLICT DO NOTHING).
func (r *followRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

// Unfollow удаляет ребро подписки. Отписка от того, на кого не подписан, не ошибка.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.followee_id = u.user_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return users, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.follower_id = u.user_id
		WHERE f.followee_id = $1
		ORDER BY f.created_at
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return users, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return ids, nil
}

func (r *followRepository) GetFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return ids, nil
}
