package services

import (
	"context"
	"errors"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentService owns comment lifecycle under posts
type CommentService struct {
	commentRepo   repositories.CommentRepository
	postRepo      repositories.PostRepository
	notifications *NotificationService
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	notifications *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		notifications: notifications,
	}
}

// CreateComment creates a comment on a post. The comment event goes through
// the notification engine, which drops it when the commenter is the post's
// author.
func (s *CommentService) CreateComment(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.notifications.PostCommented(ctx, authorID, post, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments oldest-first
func (s *CommentService) ListComments(ctx context.Context, postID uint, offset, limit int) ([]models.Comment, int64, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.NewNotFoundError("Post", postID)
		}
		return nil, 0, err
	}
	return s.commentRepo.ListCommentsByPostID(ctx, postID, offset, limit)
}

// UpdateComment updates a comment owned by the acting user
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, models.NewAuthorizationError("You can only edit your own comments")
	}
	comment.Content = content
	if err := s.commentRepo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment owned by the acting user
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", commentID)
		}
		return err
	}
	if comment.AuthorID != userID {
		return models.NewAuthorizationError("You can only delete your own comments")
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
