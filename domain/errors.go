package domain

import "errors"

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
