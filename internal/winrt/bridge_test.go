package winrt

import (
	"encoding/base64"
	"strings"
	"testing"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDispatchActivatedWithInputs(t *testing.T) {
	records := strings.Join([]string{
		"shown",
		"activated " + b64("send"),
		"input " + b64("box") + " " + b64("hello world"),
		"input " + b64("other") + " " + b64(""),
	}, "\n")

	var got *ActivatedArgs
	n := &Notification{OnActivated: func(a *ActivatedArgs) { got = a }}
	dispatchEvents(strings.NewReader(records), n)

	if got == nil {
		t.Fatal("activated handler not invoked")
	}
	if got.Arguments != "send" {
		t.Errorf("Arguments = %q, want %q", got.Arguments, "send")
	}
	if v, ok := got.UserInput["box"]; !ok || v != "hello world" {
		t.Errorf("UserInput[box] = %v, want %q", v, "hello world")
	}
	// The bridge forwards raw values; filtering empty ones is the
	// translation layer's job.
	if v, ok := got.UserInput["other"]; !ok || v != "" {
		t.Errorf("UserInput[other] = %v, want empty string", v)
	}
}

func TestDispatchActivatedEmptyArgument(t *testing.T) {
	var got *ActivatedArgs
	n := &Notification{OnActivated: func(a *ActivatedArgs) { got = a }}
	dispatchEvents(strings.NewReader("shown\nactivated "+b64("")), n)

	if got == nil {
		t.Fatal("activated handler not invoked")
	}
	if got.Arguments != "" {
		t.Errorf("Arguments = %q, want empty", got.Arguments)
	}
}

func TestDispatchDismissed(t *testing.T) {
	var got *DismissedArgs
	n := &Notification{OnDismissed: func(a *DismissedArgs) { got = a }}
	dispatchEvents(strings.NewReader("shown\ndismissed 2\n"), n)

	if got == nil {
		t.Fatal("dismissed handler not invoked")
	}
	if got.Reason == nil || *got.Reason != DismissalTimedOut {
		t.Errorf("Reason = %v, want %d", got.Reason, DismissalTimedOut)
	}
}

func TestDispatchDismissedMalformedCode(t *testing.T) {
	var got *DismissedArgs
	n := &Notification{OnDismissed: func(a *DismissedArgs) { got = a }}
	dispatchEvents(strings.NewReader("dismissed nope\n"), n)

	if got == nil {
		t.Fatal("dismissed handler not invoked")
	}
	if got.Reason != nil {
		t.Errorf("Reason = %d, want nil for malformed code", *got.Reason)
	}
}

func TestDispatchFailed(t *testing.T) {
	var got *FailedArgs
	n := &Notification{OnFailed: func(a *FailedArgs) { got = a }}
	dispatchEvents(strings.NewReader("failed -2143420155\n"), n)

	if got == nil {
		t.Fatal("failed handler not invoked")
	}
	if got.ErrorCode == nil || *got.ErrorCode != -2143420155 {
		t.Errorf("ErrorCode = %v, want -2143420155", got.ErrorCode)
	}
}

func TestDispatchNoTerminalEvent(t *testing.T) {
	invoked := false
	n := &Notification{
		OnActivated: func(*ActivatedArgs) { invoked = true },
		OnDismissed: func(*DismissedArgs) { invoked = true },
		OnFailed:    func(*FailedArgs) { invoked = true },
	}
	dispatchEvents(strings.NewReader("shown\n"), n)

	if invoked {
		t.Error("no handler should fire when the toast goes unobserved")
	}
}

func TestDispatchNilHandlers(t *testing.T) {
	// Unsubscribed kinds must be ignored, not panic.
	n := &Notification{}
	dispatchEvents(strings.NewReader("activated "+b64("x")+"\n"), n)
	dispatchEvents(strings.NewReader("dismissed 0\n"), n)
	dispatchEvents(strings.NewReader("failed -1\n"), n)
}

func TestDispatchSkipsGarbageLines(t *testing.T) {
	records := strings.Join([]string{
		"noise",
		"input " + b64("orphan") + " " + b64("before activation"),
		"activated not-base64!",
		"activated " + b64("ok"),
		"input malformed-no-space",
	}, "\n")

	var got *ActivatedArgs
	n := &Notification{OnActivated: func(a *ActivatedArgs) { got = a }}
	dispatchEvents(strings.NewReader(records), n)

	if got == nil {
		t.Fatal("activated handler not invoked")
	}
	if got.Arguments != "ok" {
		t.Errorf("Arguments = %q, want %q", got.Arguments, "ok")
	}
	if len(got.UserInput) != 0 {
		t.Errorf("UserInput = %v, want empty", got.UserInput)
	}
}

func TestDispatchCarriageReturns(t *testing.T) {
	// PowerShell output is CRLF-delimited.
	var got *DismissedArgs
	n := &Notification{OnDismissed: func(a *DismissedArgs) { got = a }}
	dispatchEvents(strings.NewReader("shown\r\ndismissed 0\r\n"), n)

	if got == nil || got.Reason == nil || *got.Reason != DismissalUserCanceled {
		t.Fatalf("got %+v, want reason 0", got)
	}
}
