package services

import (
	"context"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
)

// FeedService builds the personalized feed: a read-only view over the follow
// graph and the content store, recomputed from current state on every call.
type FeedService struct {
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	likeRepo   repositories.LikeRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
	}
}

// FeedPost is a feed entry enriched with author info and like state
type FeedPost struct {
	models.Post
	Author     models.UserCompact `json:"author"`
	LikesCount int64              `json:"likes_count"`
	IsLiked    bool               `json:"is_liked"`
}

// FeedFor returns posts authored by the user or by anyone the user follows,
// merged newest-first (created_at DESC, id DESC). A user following no one
// still sees their own posts.
func (s *FeedService) FeedFor(ctx context.Context, userID uint, offset, limit int) ([]FeedPost, int64, error) {
	authorIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	authorIDs = append(authorIDs, userID)

	posts, total, err := s.postRepo.ListPostsByAuthors(ctx, authorIDs, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	authors := make(map[uint]models.UserCompact)
	entries := make([]FeedPost, len(posts))
	for i, p := range posts {
		entries[i] = FeedPost{Post: p}
		if author, ok := authors[p.AuthorID]; ok {
			entries[i].Author = author
		} else if user, err := s.userRepo.GetUserByID(ctx, p.AuthorID); err == nil {
			authors[p.AuthorID] = user.ToCompact()
			entries[i].Author = authors[p.AuthorID]
		}
		entries[i].LikesCount, _ = s.likeRepo.GetLikesCountByPostID(ctx, p.ID)
		entries[i].IsLiked, _ = s.likeRepo.HasUserLikedPost(ctx, userID, p.ID)
	}
	return entries, total, nil
}
