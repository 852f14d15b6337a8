package services

import (
	"context"
	"testing"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeTwiceFailsAndCountsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "Hello", "world")

	_, err := env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	_, err = env.likes.Like(ctx, alice.ID, post.ID)
	requireCode(t, err, models.CodeAlreadyLiked)

	count, err := env.likes.LikesCount(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "duplicate like must not increment the count")
}

func TestUnlikeRestoresCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "Hello", "world")

	_, err := env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	require.NoError(t, env.likes.Unlike(ctx, alice.ID, post.ID))

	count, err := env.likes.LikesCount(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	requireCode(t, env.likes.Unlike(ctx, alice.ID, post.ID), models.CodeNotLiked)
}

func TestLikeMissingPostFails(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.likes.Like(context.Background(), alice.ID, 999)
	requireCode(t, err, models.CodeNotFound)
	requireCode(t, env.likes.Unlike(context.Background(), alice.ID, 999), models.CodeNotFound)
}

func TestLikeOwnPostCreatesNoNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	post := env.createPost(t, alice.ID, "Mine", "own post")

	_, err := env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 0, env.notificationCount(t))

	// The like itself still counts
	count, err := env.likes.LikesCount(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIsLikedBy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "Hello", "world")

	liked, err := env.likes.IsLikedBy(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	liked, err = env.likes.IsLikedBy(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = env.likes.IsLikedBy(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked, "like state is per user")
}
