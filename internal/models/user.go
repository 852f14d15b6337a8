package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;uniqueIndex"` // Ensure username is unique across all users
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCompact is the lightweight projection embedded in feeds and notifications
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToCompact converts a User to its compact projection
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}

// Profile is a User together with the derived follow views
type Profile struct {
	User
	Followers []string `json:"followers"` // usernames of users following this user (derived, never stored)
	Following []string `json:"following"` // usernames this user follows
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

// LoginRequest defines the request body for authentication
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for updating the own profile
type UpdateProfileRequest struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
