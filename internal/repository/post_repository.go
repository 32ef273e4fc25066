package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialgram/internal/apperrors"
	"socialgram/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
        INSERT INTO posts (post_id, author_id, content, created_at, updated_at)
        VALUES (:post_id, :author_id, :content, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден: %w", postID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE author_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// GetFollowingFeed возвращает посты авторов, на которых подписан пользователь.
func (r *postRepository) GetFollowingFeed(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT p.* FROM posts p
		JOIN follows f ON f.followee_id = p.author_id
		WHERE f.follower_id = $1
		ORDER BY p.created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetLikedByUser(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT p.* FROM posts p
		JOIN likes l ON l.post_id = p.post_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайкнутых постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			content = :content,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s не найден: %w", post.PostID, apperrors.ErrNotFound)
	}

	return nil
}

// Delete удаляет пост; комментарии и лайки удаляются каскадом на уровне схемы.
func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s не найден: %w", postID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *postRepository) Search(ctx context.Context, query string) ([]models.Post, error) {
	sqlQuery := `
		SELECT * FROM posts
		WHERE content ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске постов: %w", err)
	}

	return posts, nil
}
