package models

import (
	"errors"
	"fmt"
)

// Error codes. The conflict-class codes (already exists / already liked /
// not following / not liked) are distinct from NOT_FOUND so callers can tell
// a state conflict from a missing entity.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeSelfReference  = "SELF_REFERENCE"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeAlreadyLiked   = "ALREADY_LIKED"
	CodeNotFollowing   = "NOT_FOLLOWING"
	CodeNotLiked       = "NOT_LIKED"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is an AppError carrying the given code
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Predefined error constructors

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewAuthenticationError(message string) *AppError {
	return &AppError{Code: CodeAuthentication, Message: message}
}

func NewAuthorizationError(message string) *AppError {
	return &AppError{Code: CodeAuthorization, Message: message}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewSelfReferenceError(message string) *AppError {
	return &AppError{Code: CodeSelfReference, Message: message}
}

func NewAlreadyExistsError(message string) *AppError {
	return &AppError{Code: CodeAlreadyExists, Message: message}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{Code: CodeAlreadyLiked, Message: "Post already liked by this user"}
}

func NewNotFollowingError() *AppError {
	return &AppError{Code: CodeNotFollowing, Message: "You are not following this user"}
}

func NewNotLikedError() *AppError {
	return &AppError{Code: CodeNotLiked, Message: "Post not liked by this user"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}
