package services

import (
	"context"
	"errors"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostService owns post lifecycle and the like-derived read views
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	likeRepo repositories.LikeRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		likeRepo: likeRepo,
	}
}

// PostView is a post enriched with author info and like state
type PostView struct {
	models.Post
	Author     models.UserCompact `json:"author"`
	LikesCount int64              `json:"likes_count"`
	IsLiked    bool               `json:"is_liked"`
}

// CreatePost creates a post. The author always comes from the acting
// identity, never from client input.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, title, content string) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns one post enriched for the viewing user
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*PostView, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	view := &PostView{Post: *post}
	s.enrich(ctx, view, viewerID)
	return view, nil
}

// ListPosts returns all posts newest-first, enriched for the viewing user
func (s *PostService) ListPosts(ctx context.Context, viewerID uint, offset, limit int) ([]PostView, int64, error) {
	posts, total, err := s.postRepo.ListPosts(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{Post: p}
		s.enrich(ctx, &views[i], viewerID)
	}
	return views, total, nil
}

// UpdatePost updates a post owned by the acting user
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, title, content string) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, models.NewAuthorizationError("You can only edit your own posts")
	}
	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	if err := s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post owned by the acting user, cascading to its
// comments and likes. Notifications targeting the post are left in place and
// degrade at render time.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}
	if post.AuthorID != userID {
		return models.NewAuthorizationError("You can only delete your own posts")
	}
	return s.postRepo.DeletePost(ctx, postID)
}

func (s *PostService) enrich(ctx context.Context, view *PostView, viewerID uint) {
	if author, err := s.userRepo.GetUserByID(ctx, view.AuthorID); err == nil {
		view.Author = author.ToCompact()
	}
	view.LikesCount, _ = s.likeRepo.GetLikesCountByPostID(ctx, view.ID)
	if viewerID > 0 {
		view.IsLiked, _ = s.likeRepo.HasUserLikedPost(ctx, viewerID, view.ID)
	}
}
