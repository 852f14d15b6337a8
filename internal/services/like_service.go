package services

import (
	"context"
	"errors"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeService owns like/unlike transitions on posts
type LikeService struct {
	likeRepo      repositories.LikeRepository
	postRepo      repositories.PostRepository
	notifications *NotificationService
}

// NewLikeService creates a new LikeService
func NewLikeService(
	likeRepo repositories.LikeRepository,
	postRepo repositories.PostRepository,
	notifications *NotificationService,
) *LikeService {
	return &LikeService{
		likeRepo:      likeRepo,
		postRepo:      postRepo,
		notifications: notifications,
	}
}

// Like inserts the (user, post) like. Uniqueness is enforced by the storage
// constraint in the same insert, so a concurrent duplicate loses with a
// constraint violation rather than creating a second row.
func (s *LikeService) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.CreateLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyLikedError()
		}
		return nil, err
	}

	if err := s.notifications.PostLiked(ctx, userID, post); err != nil {
		return nil, err
	}
	return like, nil
}

// LikesCount returns the number of likes on a post
func (s *LikeService) LikesCount(ctx context.Context, postID uint) (int64, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", postID)
		}
		return 0, err
	}
	return s.likeRepo.GetLikesCountByPostID(ctx, postID)
}

// IsLikedBy reports whether the user has liked the post
func (s *LikeService) IsLikedBy(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFoundError("Post", postID)
		}
		return false, err
	}
	return s.likeRepo.HasUserLikedPost(ctx, userID, postID)
}

// Unlike removes the like. A previously issued liked notification is not
// retracted.
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	rows, err := s.likeRepo.DeleteLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotLikedError()
	}
	return nil
}
