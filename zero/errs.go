package zero

import "errors"

var (
	ErrMagic     = errors.New("bad magic bytes")
	ErrVersion   = errors.New("unsupported format version")
	ErrTruncated = errors.New("truncated input")
	ErrCorrupt   = errors.New("corrupt input")
)
