package domain

import "errors"

var (
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrMissingArguments = errors.New("missing arguments")
	ErrNoReplyTarget    = errors.New("no reply target")
	ErrSessionActive    = errors.New("session already active")
	ErrNoSession        = errors.New("no active session")
)
