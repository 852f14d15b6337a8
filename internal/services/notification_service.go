package services

import (
	"context"
	"errors"

	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService derives notifications from social actions and tracks
// their read state. Every event path goes through record, which suppresses
// self-actions centrally.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	postRepo         repositories.PostRepository
	commentRepo      repositories.CommentRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
	}
}

// record is the single construction path for notifications. A notification
// with actor == recipient is never created, whatever the event source.
func (s *NotificationService) record(ctx context.Context, actorID, recipientID uint, verb, targetType string, targetID uint) error {
	if actorID == recipientID {
		return nil
	}
	return s.notificationRepo.CreateNotification(ctx, &models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	})
}

// UserFollowed records a follow event. The followed user is the recipient
// and the acting user is the target, mirroring "X followed you".
func (s *NotificationService) UserFollowed(ctx context.Context, actorID, followedID uint) error {
	return s.record(ctx, actorID, followedID, models.VerbFollowed, models.TargetTypeUser, actorID)
}

// PostLiked records a like event for the post's author
func (s *NotificationService) PostLiked(ctx context.Context, actorID uint, post *models.Post) error {
	return s.record(ctx, actorID, post.AuthorID, models.VerbLiked, models.TargetTypePost, post.ID)
}

// PostCommented records a comment event for the post's author
func (s *NotificationService) PostCommented(ctx context.Context, actorID uint, post *models.Post, comment *models.Comment) error {
	return s.record(ctx, actorID, post.AuthorID, models.VerbCommented, models.TargetTypeComment, comment.ID)
}

// NotificationEntry is a notification enriched for display
type NotificationEntry struct {
	models.Notification
	ActorUsername string             `json:"actor_username"`
	TargetInfo    *models.TargetInfo `json:"target_info"`
}

// ListForRecipient returns the recipient's notifications newest-first,
// enriched with the actor's username and the resolved target
func (s *NotificationService) ListForRecipient(ctx context.Context, recipientID uint, offset, limit int) ([]NotificationEntry, int64, error) {
	notifications, total, err := s.notificationRepo.ListByRecipientID(ctx, recipientID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	usernames := make(map[uint]string)
	entries := make([]NotificationEntry, len(notifications))
	for i, n := range notifications {
		entries[i] = NotificationEntry{Notification: n}
		if name, ok := usernames[n.ActorID]; ok {
			entries[i].ActorUsername = name
		} else if actor, err := s.userRepo.GetUserByID(ctx, n.ActorID); err == nil {
			usernames[n.ActorID] = actor.Username
			entries[i].ActorUsername = actor.Username
		}
		entries[i].TargetInfo = s.RenderTarget(ctx, &notifications[i])
	}
	return entries, total, nil
}

// UnreadCount returns how many notifications the recipient has not read yet
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, recipientID)
}

// MarkRead transitions one notification to read. The lookup is scoped to the
// recipient, so a notification owned by another user yields the same
// not-found error as a missing one.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, notificationID uint) error {
	notification, err := s.notificationRepo.GetForRecipient(ctx, notificationID, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Notification", notificationID)
		}
		return err
	}
	return s.notificationRepo.MarkAsRead(ctx, notification.ID)
}

// MarkAllRead transitions every unread notification of the recipient to read
// and returns the count mutated
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return s.notificationRepo.MarkAllAsRead(ctx, recipientID)
}

// RenderTarget resolves the polymorphic target into its display projection.
// A dangling reference degrades: nil for a known type whose entity is gone,
// a bare {type, id} tag for an unknown type.
func (s *NotificationService) RenderTarget(ctx context.Context, n *models.Notification) *models.TargetInfo {
	switch n.TargetType {
	case models.TargetTypePost:
		post, err := s.postRepo.GetPostByID(ctx, n.TargetID)
		if err != nil {
			return nil
		}
		return &models.TargetInfo{
			Type:           models.TargetTypePost,
			ID:             post.ID,
			Title:          post.Title,
			ContentSnippet: snippet(post.Content),
		}
	case models.TargetTypeComment:
		comment, err := s.commentRepo.GetCommentByID(ctx, n.TargetID)
		if err != nil {
			return nil
		}
		info := &models.TargetInfo{
			Type:           models.TargetTypeComment,
			ID:             comment.ID,
			ContentSnippet: snippet(comment.Content),
		}
		if post, err := s.postRepo.GetPostByID(ctx, comment.PostID); err == nil {
			info.PostTitle = post.Title
		}
		return info
	case models.TargetTypeUser:
		user, err := s.userRepo.GetUserByID(ctx, n.TargetID)
		if err != nil {
			return nil
		}
		return &models.TargetInfo{
			Type:       models.TargetTypeUser,
			ID:         user.ID,
			Username:   user.Username,
			BioSnippet: snippet(user.Bio),
		}
	default:
		return &models.TargetInfo{Type: n.TargetType, ID: n.TargetID}
	}
}

// snippet truncates display text to 50 characters with an ellipsis
func snippet(s string) string {
	runes := []rune(s)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return s
}
