package wintoast

import (
	"fmt"

	"github.com/llehouerou/wintoast/internal/winrt"
)

// PowerShellAumID is the AUM_ID of the Windows PowerShell executable.
// It works without registration and is useful for experimentation;
// real applications should register their own identity, see Register.
const PowerShellAumID = `{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\WindowsPowerShell\v1.0\powershell.exe`

// ToastManager shows toasts under one application identity.
//
// Registration calls are builder-style and expected to complete before
// the first Show. The registered handlers are attached on every Show
// and are invoked from a platform-owned goroutine, not the goroutine
// that called Show; they must be safe to call from there.
type ToastManager struct {
	appID string

	onActivated    func(*ActivatedAction)
	activatedInput string
	onDismissed    func(ToastDismissed, error)
	onFailed       func(ToastFailed)
}

// NewToastManager creates a manager for the given AUM_ID. The
// identity must have been registered with the platform, see Register.
func NewToastManager(aumID string) *ToastManager {
	return &ToastManager{appID: aumID}
}

// OnActivated registers the activation handler, replacing any previous
// one. inputID is an opaque context carried into each
// ActivatedAction.InputID unchanged; pass "" for none.
//
// The handler receives nil for a body click. The platform reports a
// body click as an empty argument string, so an action configured with
// an empty argument also arrives as nil.
func (m *ToastManager) OnActivated(inputID string, f func(*ActivatedAction)) *ToastManager {
	m.activatedInput = inputID
	m.onActivated = f
	return m
}

// OnDismissed registers the dismissal handler, replacing any previous
// one. The handler receives ErrInvalidDismissalReason when the
// platform reported no reason or an unrecognized one.
func (m *ToastManager) OnDismissed(f func(ToastDismissed, error)) *ToastManager {
	m.onDismissed = f
	return m
}

// OnFailed registers the failure handler, replacing any previous one.
func (m *ToastManager) OnFailed(f func(ToastFailed)) *ToastManager {
	m.onFailed = f
	return m
}

// Show serializes the toast and submits it for display. It returns
// once the platform accepted the submission; activation, dismissal or
// failure is reported later through the registered handlers, at most
// one of them per shown toast.
func (m *ToastManager) Show(t *Toast) error {
	n := m.buildNotification(t)

	notifier, err := winrt.NewNotifier(m.appID)
	if err != nil {
		return fmt.Errorf("create toast notifier: %w", err)
	}
	if err := notifier.Show(n); err != nil {
		return fmt.Errorf("show toast: %w", err)
	}
	return nil
}

// buildNotification serializes the toast and wraps the registered
// handlers over the event translators. Unregistered kinds stay nil so
// the platform layer does not subscribe to them.
func (m *ToastManager) buildNotification(t *Toast) *winrt.Notification {
	n := &winrt.Notification{
		XML:       t.XML(),
		Tag:       t.tag,
		Group:     t.group,
		RemoteID:  t.remoteID,
		ExpiresIn: t.expiresIn,
		EventWait: t.eventWindow(),
	}

	// Capture the tag now: the toast may be mutated or discarded by
	// the caller long before an event arrives.
	tag := t.tag
	if m.onActivated != nil {
		handler, inputID := m.onActivated, m.activatedInput
		n.OnActivated = func(args *winrt.ActivatedArgs) {
			handler(activatedAction(tag, args, inputID))
		}
	}
	if m.onDismissed != nil {
		handler := m.onDismissed
		n.OnDismissed = func(args *winrt.DismissedArgs) {
			handler(dismissal(tag, args))
		}
	}
	if m.onFailed != nil {
		handler := m.onFailed
		n.OnFailed = func(args *winrt.FailedArgs) {
			handler(failure(tag, args))
		}
	}
	return n
}

// Remove removes the notification with the given tag. Removing a tag
// that is not (or no longer) shown is not an error.
func (m *ToastManager) Remove(tag string) error {
	h, err := winrt.NewHistory(m.appID)
	if err != nil {
		return fmt.Errorf("open notification history: %w", err)
	}
	if err := h.Remove(tag); err != nil {
		return fmt.Errorf("remove toast: %w", err)
	}
	return nil
}

// RemoveGroupedTag removes the notification with the given tag inside
// the given group.
func (m *ToastManager) RemoveGroupedTag(tag, group string) error {
	h, err := winrt.NewHistory(m.appID)
	if err != nil {
		return fmt.Errorf("open notification history: %w", err)
	}
	if err := h.RemoveGroupedTag(tag, group); err != nil {
		return fmt.Errorf("remove toast: %w", err)
	}
	return nil
}

// RemoveGroup removes all notifications in the given group.
func (m *ToastManager) RemoveGroup(group string) error {
	h, err := winrt.NewHistory(m.appID)
	if err != nil {
		return fmt.Errorf("open notification history: %w", err)
	}
	if err := h.RemoveGroup(group); err != nil {
		return fmt.Errorf("remove toast group: %w", err)
	}
	return nil
}

// Clear removes all of this application's notifications.
func (m *ToastManager) Clear() error {
	h, err := winrt.NewHistory(m.appID)
	if err != nil {
		return fmt.Errorf("open notification history: %w", err)
	}
	if err := h.Clear(); err != nil {
		return fmt.Errorf("clear toasts: %w", err)
	}
	return nil
}
