package ir

import "errors"

var (
	ErrValidation   = errors.New("invalid document")
	ErrUndefinedRef = errors.New("undefined reference")
)
