package domain

import "errors"

var (
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid authentication credentials")
	ErrPlantNotFound      = errors.New("plant not found")
	ErrAlreadyLiked       = errors.New("plant already liked")
	ErrNotLiked           = errors.New("plant not liked yet")
	ErrNotOwner           = errors.New("only plant owner can view likes")
)
