package prefio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/core"
)

// ErrMalformedMatching indicates a matching file that cannot be parsed:
// wrong line count, wrong token count, bad id range or a repeated hospital.
var ErrMalformedMatching = errors.New("prefio: malformed matching")

// SnappyExt is the file extension that selects snappy compression.
const SnappyExt = ".sz"

// malformedInput wraps core.ErrMalformedInput with a formatted reason.
func malformedInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", core.ErrMalformedInput, fmt.Sprintf(format, args...))
}

// malformedMatching wraps ErrMalformedMatching with a formatted reason.
func malformedMatching(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedMatching, fmt.Sprintf(format, args...))
}
