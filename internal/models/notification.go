package models

import "time"

// Notification verbs. The set is closed: unfollowing and unliking are silent.
const (
	VerbFollowed  = "followed you"
	VerbLiked     = "liked"
	VerbCommented = "commented on"
)

// Notification target type tags
const (
	TargetTypeUser    = "user"
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// Notification represents a user notification. The target is polymorphic:
// TargetType + TargetID reference a User, Post or Comment. Targets may become
// dangling when the referenced entity is later deleted; notifications are
// never retracted, rendering degrades instead.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index"` // who sees the notification
	ActorID     uint      `json:"actor_id" gorm:"index"`     // who triggered it, never equal to RecipientID
	Verb        string    `json:"verb" gorm:"size:30"`
	TargetType  string    `json:"target_type" gorm:"size:20"`
	TargetID    uint      `json:"target_id"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// TargetInfo is the display projection of a resolved notification target.
// Only the fields matching the target type are set.
type TargetInfo struct {
	Type           string `json:"type"`
	ID             uint   `json:"id"`
	Title          string `json:"title,omitempty"`           // post
	ContentSnippet string `json:"content_snippet,omitempty"` // post, comment
	PostTitle      string `json:"post_title,omitempty"`      // comment
	Username       string `json:"username,omitempty"`        // user
	BioSnippet     string `json:"bio_snippet,omitempty"`     // user
}
