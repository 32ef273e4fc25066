package service

import (
	"context"
	"fmt"
	"strings"

	"socialgram/internal/apperrors"
	"socialgram/internal/models"
	"socialgram/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, actorID, content string) (*models.Post, error)
	UpdatePost(ctx context.Context, actorID, postID, content string) (*models.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	Like(ctx context.Context, actorID, postID string) (*models.Like, error)
	Unlike(ctx context.Context, actorID, postID string) error
	AddComment(ctx context.Context, actorID, postID, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, likeRepo repository.LikeRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// assertOwner - единая проверка владения для всех мутирующих операций.
func assertOwner(actorID, ownerID string) error {
	if actorID != ownerID {
		return fmt.Errorf("только автор может изменить или удалить: %w", apperrors.ErrPermissionDenied)
	}
	return nil
}

// CreatePost создает пост от имени actor. Автор всегда берется из токена,
// переданное клиентом поле author игнорируется.
func (p *postService) CreatePost(ctx context.Context, actorID, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("отсутствует содержимое поста: %w", apperrors.ErrValidation)
	}

	post := &models.Post{
		AuthorID: actorID,
		Content:  content,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, actorID, postID, content string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := assertOwner(actorID, post.AuthorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("отсутствует содержимое поста: %w", apperrors.ErrValidation)
	}

	post.Content = content

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := assertOwner(actorID, post.AuthorID); err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) Like(ctx context.Context, actorID, postID string) (*models.Like, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	like := &models.Like{
		PostID: postID,
		UserID: actorID,
	}

	err = p.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}

	return like, nil
}

func (p *postService) Unlike(ctx context.Context, actorID, postID string) error {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return p.likeRepo.Delete(ctx, postID, actorID)
}

func (p *postService) AddComment(ctx context.Context, actorID, postID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("отсутствует содержимое комментария: %w", apperrors.ErrValidation)
	}

	// post must exist
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: actorID,
		Content:  content,
	}

	err = p.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *postService) UpdateComment(ctx context.Context, actorID, commentID, content string) (*models.Comment, error) {
	comment, err := p.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := assertOwner(actorID, comment.AuthorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("отсутствует содержимое комментария: %w", apperrors.ErrValidation)
	}

	comment.Content = content

	err = p.commentRepo.Update(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *postService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := p.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := assertOwner(actorID, comment.AuthorID); err != nil {
		return err
	}

	return p.commentRepo.Delete(ctx, commentID)
}

func (p *postService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return p.commentRepo.GetByPostID(ctx, postID)
}
