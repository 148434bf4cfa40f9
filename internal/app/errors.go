package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownPosition = errors.New("unknown position category")
)
