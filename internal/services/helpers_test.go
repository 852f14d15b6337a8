package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test. TranslateError is on,
// as in production, so unique-constraint violations surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	))
	return db
}

// testEnv wires the full service graph over one test database
type testEnv struct {
	db            *gorm.DB
	userRepo      repositories.UserRepository
	follows       *FollowService
	posts         *PostService
	comments      *CommentService
	likes         *LikeService
	feed          *FeedService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	notifications := NewNotificationService(notificationRepo, userRepo, postRepo, commentRepo)
	return &testEnv{
		db:            db,
		userRepo:      userRepo,
		follows:       NewFollowService(followRepo, userRepo, notifications),
		posts:         NewPostService(postRepo, userRepo, likeRepo),
		comments:      NewCommentService(commentRepo, postRepo, notifications),
		likes:         NewLikeService(likeRepo, postRepo, notifications),
		feed:          NewFeedService(postRepo, followRepo, userRepo, likeRepo),
		notifications: notifications,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, e.userRepo.CreateUser(context.Background(), user))
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint, title, content string) *models.Post {
	t.Helper()
	post, err := e.posts.CreatePost(context.Background(), authorID, title, content)
	require.NoError(t, err)
	return post
}

// notificationCount counts stored notifications directly
func (e *testEnv) notificationCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Notification{}).Count(&count).Error)
	return count
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, models.HasCode(err, code), "expected code %s, got %v", code, err)
}
