package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("access forbidden")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrUnknownRole          = errors.New("unknown role")
	ErrUnknownClub          = errors.New("unknown club")
	ErrMissingField         = errors.New("missing required field")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
