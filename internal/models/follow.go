package models

import "time"

// Follow represents a directed follow edge: the follower sees the followed
// user's posts in their feed. The composite unique index makes the edge
// unique per ordered pair at the storage level; the followers view is derived
// by querying the inverse direction, never stored.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
