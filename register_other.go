//go:build !windows

package wintoast

// Register is only available on Windows.
func Register(_, _, _ string) error {
	return ErrUnsupported
}

// Unregister is only available on Windows.
func Unregister(_ string) error {
	return ErrUnsupported
}
