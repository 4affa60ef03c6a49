package winrt

import (
	"bufio"
	"encoding/base64"
	"io"
	"strconv"
	"strings"
)

// The PowerShell bridge reports the toast's terminal event on stdout
// as line records. Arbitrary strings travel base64-encoded so the
// protocol stays line-oriented:
//
//	shown
//	activated <base64 arguments>
//	input <base64 key> <base64 value>
//	dismissed <reason code>
//	failed <hresult>
//
// At most one of activated/dismissed/failed appears per toast; input
// lines follow an activated line.

const recordShown = "shown"

// dispatchEvents reads bridge records from r until EOF and invokes
// the matching notification handler, if registered. EOF without a
// terminal record means the toast went unobserved; no handler fires.
func dispatchEvents(r io.Reader, n *Notification) {
	var activated *ActivatedArgs

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		verb, rest, _ := strings.Cut(line, " ")
		switch verb {
		case recordShown:
			// Submission confirmation, already consumed by Show.
		case "activated":
			args, err := base64String(rest)
			if err != nil {
				continue
			}
			activated = &ActivatedArgs{Arguments: args, UserInput: map[string]any{}}
		case "input":
			if activated == nil {
				continue
			}
			rawKey, rawValue, ok := strings.Cut(rest, " ")
			if !ok {
				continue
			}
			key, err := base64String(rawKey)
			if err != nil {
				continue
			}
			value, err := base64String(rawValue)
			if err != nil {
				continue
			}
			activated.UserInput[key] = value
		case "dismissed":
			code, err := strconv.ParseInt(rest, 10, 32)
			args := &DismissedArgs{}
			if err == nil {
				reason := int32(code)
				args.Reason = &reason
			}
			if n.OnDismissed != nil {
				n.OnDismissed(args)
			}
			return
		case "failed":
			code, err := strconv.ParseInt(rest, 10, 32)
			args := &FailedArgs{}
			if err == nil {
				hresult := int32(code)
				args.ErrorCode = &hresult
			}
			if n.OnFailed != nil {
				n.OnFailed(args)
			}
			return
		}
	}

	if activated != nil && n.OnActivated != nil {
		n.OnActivated(activated)
	}
}

func base64String(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
