package repository

import (
	"context"
	"socialgram/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
	DeleteUser(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	GetFollowing(ctx context.Context, userID string) ([]models.User, error)
	GetFollowers(ctx context.Context, userID string) ([]models.User, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	GetFollowerIDs(ctx context.Context, userID string) ([]string, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	GetFollowingFeed(ctx context.Context, userID string) ([]models.Post, error)
	GetLikedByUser(ctx context.Context, userID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	Search(ctx context.Context, query string) ([]models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, postID, userID string) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, scheduled *models.ScheduledPost) error
	ClaimDue(ctx context.Context, now time.Time) ([]models.ScheduledPost, error)
	MarkFailed(ctx context.Context, scheduleID string) error
}

type Repository struct {
	User     UserRepository
	Follow   FollowRepository
	Post     PostRepository
	Comment  CommentRepository
	Like     LikeRepository
	Schedule ScheduleRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Follow:   NewFollowRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Like:     NewLikeRepository(db),
		Schedule: NewScheduleRepository(db),
	}
}
