package readable

import "errors"

var (
	ErrParse          = errors.New("readable parse error")
	ErrKeyValue       = errors.New("malformed key-value line")
	ErrSectionHeader  = errors.New("malformed section header")
	ErrTable          = errors.New("invalid table structure")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrValue          = errors.New("invalid value")
)
