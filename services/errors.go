package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	ErrUnsupportedFormat  = errors.New("unsupported bracket format")
	ErrPublishingDisabled = errors.New("bracket publishing is not configured")
	ErrRoomNameTooLong    = errors.New("room name must be at most 64 characters")
)
