package cache

import "errors"

var (
	ErrPath      = errors.New("path normalization failed")
	ErrDir       = errors.New("directory creation failed")
	ErrWrite     = errors.New("artifact write failed")
	ErrSerialize = errors.New("serialization failed")
)
