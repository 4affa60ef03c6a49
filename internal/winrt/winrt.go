// Package winrt is the boundary to the Windows notification platform.
// It submits serialized notification documents and delivers the raw
// event payloads the platform raises later, without interpreting them;
// translating payloads into domain values is the caller's concern.
package winrt

import "time"

// Dismissal reason codes as reported by the platform.
const (
	DismissalUserCanceled      int32 = 0
	DismissalApplicationHidden int32 = 1
	DismissalTimedOut          int32 = 2
)

// ActivatedArgs is the raw payload of an activation event.
type ActivatedArgs struct {
	// Arguments is the argument string of the pressed button, or the
	// toast's launch argument for a body click. May be empty.
	Arguments string
	// UserInput maps input ids to submitted values. Values are opaque
	// platform variants; only string values are meaningful.
	UserInput map[string]any
}

// DismissedArgs is the raw payload of a dismissal event. Nil Reason
// means the platform did not report one.
type DismissedArgs struct {
	Reason *int32
}

// FailedArgs is the raw payload of a display-failure event. Nil
// ErrorCode means the platform did not report one; a non-negative
// code reports no actual error condition.
type FailedArgs struct {
	ErrorCode *int32
}

// Notification is one toast submission: the serialized document, its
// identity, and the raw-payload handlers to attach. A nil handler
// means "do not subscribe" for that event kind.
//
// Handlers are invoked from a goroutine owned by this package, at an
// arbitrary time after Show returns, possibly never.
type Notification struct {
	XML      string
	Tag      string
	Group    string
	RemoteID string
	// ExpiresIn is the offset from submission time after which the
	// toast is removed from the shade. Zero means no expiration.
	ExpiresIn time.Duration
	// EventWait bounds how long the event subscription stays alive
	// after showing, covering the toast's on-screen time. Zero means
	// wait until a terminal event arrives, for toasts that stay on
	// screen until the user acts.
	EventWait time.Duration

	OnActivated func(*ActivatedArgs)
	OnDismissed func(*DismissedArgs)
	OnFailed    func(*FailedArgs)
}

// Notifier submits notifications for one application identity.
type Notifier interface {
	// Show displays the notification. It returns once the platform
	// accepted the submission; events arrive later.
	Show(n *Notification) error
}

// History removes previously shown notifications. Removing a target
// that no longer exists is not an error.
type History interface {
	Remove(tag string) error
	RemoveGroupedTag(tag, group string) error
	RemoveGroup(group string) error
	Clear() error
}
