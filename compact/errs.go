package compact

import (
	"errors"
	"fmt"
)

// ErrParse is the umbrella for every compact parse failure; the
// specific sentinels below all wrap it.
var ErrParse = errors.New("compact parse error")

var (
	ErrContext        = fmt.Errorf("%w: malformed context line", ErrParse)
	ErrReference      = fmt.Errorf("%w: malformed reference line", ErrParse)
	ErrSectionHeader  = fmt.Errorf("%w: malformed section header", ErrParse)
	ErrSchemaMismatch = fmt.Errorf("%w: schema mismatch", ErrParse)
	ErrValue          = fmt.Errorf("%w: invalid value", ErrParse)
)
