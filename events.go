package wintoast

import "github.com/llehouerou/wintoast/internal/winrt"

// ActivatedAction is delivered to the activation handler when the
// user picked an action on the toast.
type ActivatedAction struct {
	// Tag of the originating toast. Empty if the toast had none.
	Tag string
	// Arg is the argument string of the pressed action.
	Arg string
	// Values maps input ids to submitted values. Only inputs whose
	// submitted value was a non-empty string appear here.
	Values map[string]string
	// InputID is the input-id context supplied at handler
	// registration. It is carried through unchanged, not derived from
	// the event. Empty if none was supplied.
	InputID string
}

// DismissalReason is why a toast stopped being shown.
type DismissalReason int

const (
	// DismissalReasonUserCanceled means the user dismissed the toast.
	DismissalReasonUserCanceled DismissalReason = iota
	// DismissalReasonApplicationHidden means the app hid the toast.
	DismissalReasonApplicationHidden
	// DismissalReasonTimedOut means the toast was shown for the
	// maximum allowed time and faded out: about 7 seconds, or 25 for
	// long-duration toasts.
	DismissalReasonTimedOut
)

func (r DismissalReason) String() string {
	switch r {
	case DismissalReasonUserCanceled:
		return "UserCanceled"
	case DismissalReasonApplicationHidden:
		return "ApplicationHidden"
	case DismissalReasonTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// ToastDismissed is delivered to the dismissal handler.
type ToastDismissed struct {
	// Tag of the originating toast. Empty if the toast had none.
	Tag string
	// Reason for the dismissal.
	Reason DismissalReason
}

// ToastFailed is delivered to the failure handler when the platform
// could not display the toast.
type ToastFailed struct {
	// Tag of the originating toast. Empty if the toast had none.
	Tag string
	// Err describes why display failed: an *OSError when the platform
	// reported an error code, ErrUnknown otherwise.
	Err error
}

// activatedAction translates a raw activation payload. It returns nil
// for a body click, which the platform reports as an empty argument
// string; an action deliberately configured with an empty argument is
// indistinguishable from that and also yields nil.
func activatedAction(tag string, args *winrt.ActivatedArgs, inputID string) *ActivatedAction {
	if args == nil || args.Arguments == "" {
		return nil
	}
	values := make(map[string]string)
	for key, value := range args.UserInput {
		s, ok := value.(string)
		if !ok || key == "" || s == "" {
			continue
		}
		values[key] = s
	}
	return &ActivatedAction{Tag: tag, Arg: args.Arguments, Values: values, InputID: inputID}
}

// dismissal translates a raw dismissal payload. An absent or
// unrecognized reason is ErrInvalidDismissalReason, never a default.
func dismissal(tag string, args *winrt.DismissedArgs) (ToastDismissed, error) {
	if args == nil || args.Reason == nil {
		return ToastDismissed{}, ErrInvalidDismissalReason
	}
	var reason DismissalReason
	switch *args.Reason {
	case winrt.DismissalUserCanceled:
		reason = DismissalReasonUserCanceled
	case winrt.DismissalApplicationHidden:
		reason = DismissalReasonApplicationHidden
	case winrt.DismissalTimedOut:
		reason = DismissalReasonTimedOut
	default:
		return ToastDismissed{}, ErrInvalidDismissalReason
	}
	return ToastDismissed{Tag: tag, Reason: reason}, nil
}

// failure translates a raw failure payload. It classifies, it never
// fails: a reported error code wraps into *OSError, anything else
// falls back to ErrUnknown. Non-negative codes report no actual error
// condition.
func failure(tag string, args *winrt.FailedArgs) ToastFailed {
	if args != nil && args.ErrorCode != nil && *args.ErrorCode < 0 {
		return ToastFailed{Tag: tag, Err: &OSError{HResult: *args.ErrorCode}}
	}
	return ToastFailed{Tag: tag, Err: ErrUnknown}
}
