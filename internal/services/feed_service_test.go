package services

import (
	"context"
	"testing"
	"time"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedMergesOwnAndFollowedPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	require.NoError(t, env.follows.Follow(ctx, alice.ID, bob.ID))

	mine := env.createPost(t, alice.ID, "Mine", "by alice")
	followed := env.createPost(t, bob.ID, "Bob's", "by bob")
	env.createPost(t, carol.ID, "Carol's", "not followed")

	entries, total, err := env.feed.FeedFor(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	ids := []uint{entries[0].ID, entries[1].ID}
	assert.ElementsMatch(t, []uint{mine.ID, followed.ID}, ids)
	for _, e := range entries {
		assert.NotEmpty(t, e.Author.Username)
	}
}

func TestFeedWithNoFollowsShowsOwnPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	env.createPost(t, bob.ID, "Bob's", "post")
	mine := env.createPost(t, alice.ID, "Mine", "post")

	entries, total, err := env.feed.FeedFor(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, mine.ID, entries[0].ID)
}

func TestFeedOrderedNewestFirstWithIDTieBreak(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	now := time.Now().Truncate(time.Second)
	older := &models.Post{AuthorID: alice.ID, Title: "older", CreatedAt: now.Add(-time.Hour)}
	first := &models.Post{AuthorID: alice.ID, Title: "tied-first", CreatedAt: now}
	second := &models.Post{AuthorID: alice.ID, Title: "tied-second", CreatedAt: now}
	require.NoError(t, env.db.Create(older).Error)
	require.NoError(t, env.db.Create(first).Error)
	require.NoError(t, env.db.Create(second).Error)

	entries, total, err := env.feed.FeedFor(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)

	// Equal timestamps resolve by id descending
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, older.ID, entries[2].ID)
}

func TestFeedCarriesLikeState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	require.NoError(t, env.follows.Follow(ctx, alice.ID, bob.ID))
	post := env.createPost(t, bob.ID, "Hello", "world")
	_, err := env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	entries, _, err := env.feed.FeedFor(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].LikesCount)
	assert.True(t, entries[0].IsLiked)

	entries, _, err = env.feed.FeedFor(ctx, bob.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsLiked)
}

func TestFeedPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	now := time.Now().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		post := &models.Post{AuthorID: alice.ID, Title: "post", CreatedAt: now.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, env.db.Create(post).Error)
	}

	page1, total, err := env.feed.FeedFor(ctx, alice.ID, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)

	page2, _, err := env.feed.FeedFor(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
	assert.GreaterOrEqual(t, page1[1].CreatedAt.Unix(), page2[0].CreatedAt.Unix())
}
