package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialgram/internal/apperrors"
	"socialgram/internal/models"
)

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, scheduled *models.ScheduledPost) error {
	if scheduled.ScheduleID == "" {
		scheduled.ScheduleID = uuid.New().String()
	}

	scheduled.Status = models.ScheduleStatusPending
	scheduled.CreatedAt = time.Now()

	query := `
		INSERT INTO scheduled_posts (schedule_id, author_id, content, scheduled_at, status, created_at)
		VALUES (:schedule_id, :author_id, :content, :scheduled_at, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, scheduled)
	if err != nil {
		return fmt.Errorf("ошибка при создании отложенного поста: %w", err)
	}

	return nil
}

// ClaimDue атомарно забирает созревшие записи: строка переводится в published
// тем же UPDATE, которым читается, поэтому повторное срабатывание воркера
// по той же записи невозможно.
func (r *scheduleRepository) ClaimDue(ctx context.Context, now time.Time) ([]models.ScheduledPost, error) {
	query := `
		UPDATE scheduled_posts SET status = $1
		WHERE status = $2 AND scheduled_at <= $3
		RETURNING *
	`

	var claimed []models.ScheduledPost
	err := r.db.SelectContext(ctx, &claimed, query,
		models.ScheduleStatusPublished, models.ScheduleStatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выборке отложенных постов: %w", err)
	}

	return claimed, nil
}

func (r *scheduleRepository) MarkFailed(ctx context.Context, scheduleID string) error {
	query := `UPDATE scheduled_posts SET status = $1 WHERE schedule_id = $2`

	result, err := r.db.ExecContext(ctx, query, models.ScheduleStatusFailed, scheduleID)
	if err != nil {
		return fmt.Errorf("ошибка при пометке отложенного поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("отложенный пост с ID %s не найден: %w", scheduleID, apperrors.ErrNotFound)
	}

	return nil
}
