package entity

import "errors"

var (
	// ErrNoImageData means the download request body was absent or carried
	// no image field. Mapped to HTTP 400 at the transport boundary.
	ErrNoImageData = errors.New("no image data received")
)
