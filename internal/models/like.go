package models

import "time"

// Like represents a like on a post. The composite unique index enforces at
// most one like per (user, post) pair at the storage level, so two concurrent
// likes yield exactly one row and one constraint violation.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	CreatedAt time.Time `json:"created_at"`
}
