package repositories

import (
	"context"

	"github.com/rtawsif/linkup/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, userID, postID uint) (int64, error)
	GetLikesCountByPostID(ctx context.Context, postID uint) (int64, error)
	HasUserLikedPost(ctx context.Context, userID, postID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts the like. The uniqueness check and insert are a single
// operation: a duplicate (user, post) pair violates the composite unique
// index and surfaces as gorm.ErrDuplicatedKey.
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the like and reports how many rows were affected
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, userID, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

// GetLikesCountByPostID retrieves the count of likes for a post
func (r *PostgresLikeRepository) GetLikesCountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
