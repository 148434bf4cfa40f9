package repository

import "errors"

// Sentinel kinds for history store errors.
var (
	ErrClosed = errors.New("history store closed")
	ErrOpen   = errors.New("open history database failed")
)
