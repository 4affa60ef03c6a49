//go:build windows

package winrt

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// The bridge drives the WinRT toast API through PowerShell, the same
// route the go-toast family takes. Data crosses into the script via
// environment variables so no quoting of caller strings is needed;
// events come back as the line records parsed in bridge.go.

const showScript = `
$ErrorActionPreference = 'Stop'
$null = [Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime]
$null = [Windows.UI.Notifications.ToastNotification, Windows.UI.Notifications, ContentType = WindowsRuntime]
$null = [Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom, ContentType = WindowsRuntime]

$doc = New-Object Windows.Data.Xml.Dom.XmlDocument
$doc.LoadXml($env:WINTOAST_XML)
$toast = New-Object Windows.UI.Notifications.ToastNotification($doc)
if ($env:WINTOAST_TAG) { $toast.Tag = $env:WINTOAST_TAG }
if ($env:WINTOAST_GROUP) { $toast.Group = $env:WINTOAST_GROUP }
if ($env:WINTOAST_REMOTE_ID) { $toast.RemoteId = $env:WINTOAST_REMOTE_ID }
if ($env:WINTOAST_EXPIRES) {
    $toast.ExpirationTime = [DateTimeOffset]::Now.AddSeconds([double]$env:WINTOAST_EXPIRES)
}

$subscribed = [bool]$env:WINTOAST_WAIT
if ($subscribed) {
    Register-ObjectEvent -InputObject $toast -EventName Activated -SourceIdentifier wintoast-activated | Out-Null
    Register-ObjectEvent -InputObject $toast -EventName Dismissed -SourceIdentifier wintoast-dismissed | Out-Null
    Register-ObjectEvent -InputObject $toast -EventName Failed -SourceIdentifier wintoast-failed | Out-Null
}

$notifier = [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier($env:WINTOAST_APPID)
$notifier.Show($toast)
Write-Output 'shown'

if ($subscribed) {
    if ($env:WINTOAST_WAIT_TIMEOUT) {
        $ev = Wait-Event -Timeout ([int]$env:WINTOAST_WAIT_TIMEOUT)
    } else {
        $ev = Wait-Event
    }
    if ($ev) {
        Remove-Event -EventIdentifier $ev.EventIdentifier
        $evArgs = $ev.SourceEventArgs
        switch ($ev.SourceIdentifier) {
            'wintoast-activated' {
                $activated = [Windows.UI.Notifications.ToastActivatedEventArgs]$evArgs
                $arg = [Convert]::ToBase64String([Text.Encoding]::UTF8.GetBytes([string]$activated.Arguments))
                Write-Output ('activated ' + $arg)
                foreach ($key in $activated.UserInput.Keys) {
                    $value = $activated.UserInput[$key]
                    if ($value -is [string]) {
                        $kb = [Convert]::ToBase64String([Text.Encoding]::UTF8.GetBytes([string]$key))
                        $vb = [Convert]::ToBase64String([Text.Encoding]::UTF8.GetBytes([string]$value))
                        Write-Output ('input ' + $kb + ' ' + $vb)
                    }
                }
            }
            'wintoast-dismissed' {
                Write-Output ('dismissed ' + [int]$evArgs.Reason)
            }
            'wintoast-failed' {
                Write-Output ('failed ' + [int]$evArgs.ErrorCode.HResult)
            }
        }
    }
}
`

const historyScript = `
$ErrorActionPreference = 'Stop'
$null = [Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime]
$history = [Windows.UI.Notifications.ToastNotificationManager]::History
switch ($env:WINTOAST_OP) {
    'remove'             { $history.Remove($env:WINTOAST_TAG) }
    'remove-grouped-tag' { $history.RemoveGroupedTag($env:WINTOAST_TAG, $env:WINTOAST_GROUP, $env:WINTOAST_APPID) }
    'remove-group'       { $history.RemoveGroup($env:WINTOAST_GROUP, $env:WINTOAST_APPID) }
    'clear'              { $history.Clear($env:WINTOAST_APPID) }
}
`

type notifier struct {
	appID string
}

// NewNotifier creates a Notifier for the given application identity.
func NewNotifier(appID string) (Notifier, error) {
	return &notifier{appID: appID}, nil
}

func (nt *notifier) Show(n *Notification) error {
	wait := ""
	if n.OnActivated != nil || n.OnDismissed != nil || n.OnFailed != nil {
		wait = "1"
	}
	env := []string{
		"WINTOAST_APPID=" + nt.appID,
		"WINTOAST_XML=" + n.XML,
		"WINTOAST_TAG=" + n.Tag,
		"WINTOAST_GROUP=" + n.Group,
		"WINTOAST_REMOTE_ID=" + n.RemoteID,
		"WINTOAST_WAIT=" + wait,
	}
	if n.ExpiresIn > 0 {
		env = append(env, "WINTOAST_EXPIRES="+strconv.FormatFloat(n.ExpiresIn.Seconds(), 'f', -1, 64))
	}
	if wait != "" && n.EventWait > 0 {
		env = append(env, "WINTOAST_WAIT_TIMEOUT="+strconv.Itoa(int(n.EventWait.Seconds())))
	}

	cmd := newBridgeCommand(showScript, env)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("toast bridge: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("toast bridge: %w", err)
	}

	// The script confirms the Show call before waiting for events, so
	// submission failures surface here synchronously.
	out := bufio.NewReader(stdout)
	line, err := out.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != recordShown {
		waitErr := cmd.Wait()
		return bridgeError(waitErr, &stderr)
	}

	go func() {
		dispatchEvents(out, n)
		_ = cmd.Wait()
	}()
	return nil
}

type history struct {
	appID string
}

// NewHistory creates a History for the given application identity.
func NewHistory(appID string) (History, error) {
	return &history{appID: appID}, nil
}

func (h *history) Remove(tag string) error {
	return h.run("remove", "WINTOAST_TAG="+tag)
}

func (h *history) RemoveGroupedTag(tag, group string) error {
	return h.run("remove-grouped-tag", "WINTOAST_TAG="+tag, "WINTOAST_GROUP="+group)
}

func (h *history) RemoveGroup(group string) error {
	return h.run("remove-group", "WINTOAST_GROUP="+group)
}

func (h *history) Clear() error {
	return h.run("clear")
}

func (h *history) run(op string, extra ...string) error {
	env := append([]string{"WINTOAST_APPID=" + h.appID, "WINTOAST_OP=" + op}, extra...)
	cmd := newBridgeCommand(historyScript, env)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return bridgeError(err, &stderr)
	}
	return nil
}

func newBridgeCommand(script string, env []string) *exec.Cmd {
	cmd := exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", script)
	cmd.Env = append(os.Environ(), env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd
}

func bridgeError(waitErr error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg != "" {
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = strings.TrimRight(msg[:i], "\r")
		}
		return fmt.Errorf("toast bridge: %s", msg)
	}
	if waitErr != nil {
		return fmt.Errorf("toast bridge: %w", waitErr)
	}
	return fmt.Errorf("toast bridge: no confirmation from platform")
}
