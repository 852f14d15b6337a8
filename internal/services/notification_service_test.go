package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createUser(t, "a")
	b := env.createUser(t, "b")

	// A follows B, B posts, A likes the post
	require.NoError(t, env.follows.Follow(ctx, a.ID, b.ID))
	post := env.createPost(t, b.ID, "Hello", "world")
	_, err := env.likes.Like(ctx, a.ID, post.ID)
	require.NoError(t, err)

	entries, total, err := env.notifications.ListForRecipient(ctx, b.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	// Newest-first: the like arrives after the follow
	liked := entries[0]
	assert.Equal(t, models.VerbLiked, liked.Verb)
	assert.Equal(t, a.ID, liked.ActorID)
	assert.Equal(t, "a", liked.ActorUsername)
	assert.False(t, liked.IsRead)
	require.NotNil(t, liked.TargetInfo)
	assert.Equal(t, models.TargetTypePost, liked.TargetInfo.Type)
	assert.Equal(t, post.ID, liked.TargetInfo.ID)
	assert.Equal(t, "Hello", liked.TargetInfo.Title)
	assert.Equal(t, "world", liked.TargetInfo.ContentSnippet)

	unread, err := env.notifications.UnreadCount(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, env.notifications.MarkRead(ctx, b.ID, liked.ID))
	unread, err = env.notifications.UnreadCount(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	marked, err := env.notifications.MarkAllRead(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, marked)

	// A second mark-all has nothing left to mutate
	marked, err = env.notifications.MarkAllRead(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, marked)
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createUser(t, "a")
	b := env.createUser(t, "b")
	mallory := env.createUser(t, "mallory")

	require.NoError(t, env.follows.Follow(ctx, a.ID, b.ID))
	entries, _, err := env.notifications.ListForRecipient(ctx, b.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Another user's notification looks like a missing one
	requireCode(t, env.notifications.MarkRead(ctx, mallory.ID, entries[0].ID), models.CodeNotFound)
	requireCode(t, env.notifications.MarkRead(ctx, b.ID, 999), models.CodeNotFound)

	unread, err := env.notifications.UnreadCount(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread, "foreign mark-read must not mutate")
}

func TestNotificationsScopedPerRecipient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createUser(t, "a")
	b := env.createUser(t, "b")
	c := env.createUser(t, "c")

	require.NoError(t, env.follows.Follow(ctx, a.ID, b.ID))
	require.NoError(t, env.follows.Follow(ctx, a.ID, c.ID))

	_, total, err := env.notifications.ListForRecipient(ctx, b.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = env.notifications.ListForRecipient(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total, "the actor never sees their own events")
}

func TestRenderTargetSnippetTruncation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	long := strings.Repeat("x", 80)
	post := env.createPost(t, alice.ID, "Long", long)

	info := env.notifications.RenderTarget(ctx, &models.Notification{
		TargetType: models.TargetTypePost,
		TargetID:   post.ID,
	})
	require.NotNil(t, info)
	assert.Equal(t, strings.Repeat("x", 50)+"...", info.ContentSnippet)

	short := env.createPost(t, alice.ID, "Short", "exactly fits")
	info = env.notifications.RenderTarget(ctx, &models.Notification{
		TargetType: models.TargetTypePost,
		TargetID:   short.ID,
	})
	require.NotNil(t, info)
	assert.Equal(t, "exactly fits", info.ContentSnippet)
}

func TestRenderTargetCommentCarriesParentTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	post := env.createPost(t, alice.ID, "Parent", "body")
	comment, err := env.comments.CreateComment(ctx, alice.ID, post.ID, "a reply")
	require.NoError(t, err)

	info := env.notifications.RenderTarget(ctx, &models.Notification{
		TargetType: models.TargetTypeComment,
		TargetID:   comment.ID,
	})
	require.NotNil(t, info)
	assert.Equal(t, "a reply", info.ContentSnippet)
	assert.Equal(t, "Parent", info.PostTitle)
}

func TestRenderTargetDanglingReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "Doomed", "soon gone")

	_, err := env.likes.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	require.NoError(t, env.posts.DeletePost(ctx, bob.ID, post.ID))

	// The notification survives the post but renders without a target
	entries, total, err := env.notifications.ListForRecipient(ctx, bob.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, models.VerbLiked, entries[0].Verb)
	assert.Nil(t, entries[0].TargetInfo)
}

func TestRenderTargetUnknownType(t *testing.T) {
	env := newTestEnv(t)

	info := env.notifications.RenderTarget(context.Background(), &models.Notification{
		TargetType: "story",
		TargetID:   42,
	})
	require.NotNil(t, info)
	assert.Equal(t, "story", info.Type)
	assert.EqualValues(t, 42, info.ID)
	assert.Empty(t, info.Title)
	assert.Empty(t, info.ContentSnippet)
}
