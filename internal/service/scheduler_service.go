package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"socialgram/internal/apperrors"
	"socialgram/internal/config"
	"socialgram/internal/models"
	"socialgram/internal/repository"
)

type SchedulerService interface {
	SchedulePost(ctx context.Context, authorID, content string, scheduledAt time.Time) (*models.ScheduledPost, error)
	ProcessDue(ctx context.Context, now time.Time) (int, error)
	Run(ctx context.Context)
}

type schedulerService struct {
	scheduleRepo repository.ScheduleRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	cfg          *config.Config
}

func NewSchedulerService(scheduleRepo repository.ScheduleRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, cfg *config.Config) SchedulerService {
	return &schedulerService{
		scheduleRepo: scheduleRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

// SchedulePost сохраняет отложенный пост. Если время уже наступило,
// запись публикуется сразу, не дожидаясь тика воркера.
func (s *schedulerService) SchedulePost(ctx context.Context, authorID, content string, scheduledAt time.Time) (*models.ScheduledPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("отсутствует содержимое поста: %w", apperrors.ErrValidation)
	}

	if scheduledAt.IsZero() {
		return nil, fmt.Errorf("отсутствует время публикации: %w", apperrors.ErrValidation)
	}

	// author must exist at schedule time
	_, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	scheduled := &models.ScheduledPost{
		AuthorID:    authorID,
		Content:     content,
		ScheduledAt: scheduledAt,
	}

	err = s.scheduleRepo.Create(ctx, scheduled)
	if err != nil {
		return nil, err
	}

	if !scheduledAt.After(time.Now()) {
		_, err = s.ProcessDue(ctx, time.Now())
		if err != nil {
			return nil, err
		}
		scheduled.Status = models.ScheduleStatusPublished
	}

	return scheduled, nil
}

// ProcessDue забирает созревшие записи и безусловно создает посты:
// раз запись отдана атомарным claim, время уже наступило и перепроверка
// «пора ли» не нужна. Повторный claim той же записи невозможен,
// поэтому дубликаты постов при повторных срабатываниях исключены.
func (s *schedulerService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	claimed, err := s.scheduleRepo.ClaimDue(ctx, now)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, scheduled := range claimed {
		// автор мог быть удален между планированием и публикацией
		_, err := s.userRepo.GetUserByID(ctx, scheduled.AuthorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				if markErr := s.scheduleRepo.MarkFailed(ctx, scheduled.ScheduleID); markErr != nil {
					log.Printf("Не удалось пометить отложенный пост %s: %v", scheduled.ScheduleID, markErr)
				}
				continue
			}
			return created, err
		}

		post := &models.Post{
			AuthorID: scheduled.AuthorID,
			Content:  scheduled.Content,
		}

		err = s.postRepo.Create(ctx, post)
		if err != nil {
			if markErr := s.scheduleRepo.MarkFailed(ctx, scheduled.ScheduleID); markErr != nil {
				log.Printf("Не удалось пометить отложенный пост %s: %v", scheduled.ScheduleID, markErr)
			}
			return created, fmt.Errorf("ошибка публикации отложенного поста %s: %w", scheduled.ScheduleID, err)
		}

		created++
	}

	return created, nil
}

// Run - фоновый воркер публикации. Останавливается по отмене контекста.
func (s *schedulerService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Scheduler.PollInterval)
	defer ticker.Stop()

	log.Printf("Планировщик запущен, интервал опроса: %s", s.cfg.Scheduler.PollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Планировщик остановлен")
			return
		case <-ticker.C:
			created, err := s.ProcessDue(ctx, time.Now())
			if err != nil {
				log.Printf("Ошибка публикации отложенных постов: %v", err)
			}
			if created > 0 {
				log.Printf("Опубликовано отложенных постов: %d", created)
			}
		}
	}
}
