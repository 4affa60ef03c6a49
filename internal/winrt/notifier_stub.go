//go:build !windows

package winrt

// stubNotifier is a no-op notifier for non-Windows platforms so the
// library compiles and tests run everywhere. Nothing is shown and no
// events are ever delivered.
type stubNotifier struct{}

// NewNotifier returns a no-op notifier on non-Windows platforms.
func NewNotifier(_ string) (Notifier, error) {
	return &stubNotifier{}, nil
}

func (s *stubNotifier) Show(_ *Notification) error {
	return nil
}

// stubHistory is a no-op history for non-Windows platforms.
type stubHistory struct{}

// NewHistory returns a no-op history on non-Windows platforms.
func NewHistory(_ string) (History, error) {
	return &stubHistory{}, nil
}

func (s *stubHistory) Remove(_ string) error { return nil }

func (s *stubHistory) RemoveGroupedTag(_, _ string) error { return nil }

func (s *stubHistory) RemoveGroup(_ string) error { return nil }

func (s *stubHistory) Clear() error { return nil }
