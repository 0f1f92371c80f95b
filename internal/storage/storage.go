package storage

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSessionCode = errors.New("invalid session code")
)

var (
	ErrLocationUnreadable = errors.New("gallery location unreadable")
	ErrImageNotFound      = errors.New("image not found")
	ErrAssetUnavailable   = errors.New("full asset not available yet")
	ErrInvalidDimensions  = errors.New("invalid image dimensions")
	ErrInvalidFileName    = errors.New("invalid file name")
)
