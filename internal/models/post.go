package models

import "time"

// Post represents a post authored by a user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Title     string    `json:"title" gorm:"size:255"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content string `json:"content,omitempty" validate:"omitempty,min=1"`
}
