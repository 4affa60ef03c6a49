package wintoast

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrInvalidPath means a local media path was not absolute and
	// could not be converted to a file URI.
	ErrInvalidPath = errors.New("wintoast: path is not absolute")
	// ErrInvalidDismissalReason means the platform reported a
	// dismissal reason outside the three known values, or none at all.
	ErrInvalidDismissalReason = errors.New("wintoast: unknown dismissal reason")
	// ErrUnknown means a failure event arrived without a usable error code.
	ErrUnknown = errors.New("wintoast: unknown error")
	// ErrUnsupported is returned by operations that only exist on Windows.
	ErrUnsupported = errors.New("wintoast: not supported on this platform")
)

// OSError wraps an error code reported by a Windows API call.
type OSError struct {
	HResult int32
}

func (e *OSError) Error() string {
	return fmt.Sprintf("wintoast: windows API error 0x%08X", uint32(e.HResult))
}
