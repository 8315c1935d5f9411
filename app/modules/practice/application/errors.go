package practiceservice

import "errors"

var (
	ErrSessionNotFound = errors.New("practice session not found")
	ErrInvalidSession  = errors.New("invalid practice session")
)
