package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialgram/internal/apperrors"
	"socialgram/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create создает лайк. Уникальность пары (post, user) обеспечивает индекс,
// а не проверка перед записью, поэтому гонки двух одинаковых лайков невозможны.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if like.LikeID == "" {
		like.LikeID = uuid.New().String()
	}

	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO likes (like_id, post_id, user_id, created_at)
		VALUES (:like_id, :post_id, :user_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, like)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("пост уже лайкнут: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка при создании лайка: %w", err)
	}

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("лайк не поставлен: %w", apperrors.ErrConflict)
	}

	return nil
}
