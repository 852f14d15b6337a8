package services

import (
	"context"
	"errors"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService owns the follow/unfollow state transitions. Per ordered pair
// there are two states, NotFollowing and Following; the self-reference guard
// runs before any existence check.
type FollowService struct {
	followRepo    repositories.FollowRepository
	userRepo      repositories.UserRepository
	notifications *NotificationService
}

// NewFollowService creates a new FollowService
func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *FollowService {
	return &FollowService{
		followRepo:    followRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Follow inserts the edge (follower, target). Duplicate edges are rejected by
// the storage constraint, so two concurrent follows yield exactly one edge.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewSelfReferenceError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User", targetID)
		}
		return err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: targetID}
	if err := s.followRepo.CreateFollow(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("You are already following this user")
		}
		return err
	}

	return s.notifications.UserFollowed(ctx, followerID, targetID)
}

// Unfollow removes the edge. Unfollowing is silent: no notification kind
// exists for it.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewSelfReferenceError("You cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User", targetID)
		}
		return err
	}

	rows, err := s.followRepo.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFollowingError()
	}
	return nil
}

// FollowersOf returns the set of users following userID, derived from the
// stored forward edges
func (s *FollowService) FollowersOf(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.GetFollowers(ctx, userID)
}

// FollowingOf returns the set of users userID follows
func (s *FollowService) FollowingOf(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.GetFollowing(ctx, userID)
}

// IsFollowing reports whether the edge (followerID, targetID) exists
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}
