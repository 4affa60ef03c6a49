package wintoast

import "time"

// ToastDuration is how long a toast stays on screen.
type ToastDuration int

const (
	// DurationShort shows the toast for about 7 seconds.
	DurationShort ToastDuration = iota + 1
	// DurationLong shows the toast for about 25 seconds.
	DurationLong
)

func (d ToastDuration) String() string {
	switch d {
	case DurationShort:
		return "short"
	case DurationLong:
		return "long"
	default:
		return ""
	}
}

// Scenario adjusts the toast's behavior for specific situations.
type Scenario int

const (
	// ScenarioReminder keeps the toast on screen until dismissed.
	ScenarioReminder Scenario = iota + 1
	// ScenarioAlarm behaves like Reminder and plays the alarm sound.
	ScenarioAlarm
	// ScenarioIncomingCall renders call-styled buttons and stays on
	// screen until dismissed.
	ScenarioIncomingCall
	// ScenarioUrgent can break through Do Not Disturb.
	ScenarioUrgent
)

func (s Scenario) String() string {
	switch s {
	case ScenarioReminder:
		return "reminder"
	case ScenarioAlarm:
		return "alarm"
	case ScenarioIncomingCall:
		return "incomingCall"
	case ScenarioUrgent:
		return "urgent"
	default:
		return ""
	}
}

type imageSlot struct {
	id    uint8
	image *Image
}

// Toast describes one desktop notification. Populate it with the
// fluent setters, then hand it to ToastManager.Show. Showing a toast
// does not mutate or retain it; it can be reused or discarded.
type Toast struct {
	texts      [3]*Text
	images     []imageSlot
	audio      *Audio
	header     *Header
	input      *Input
	selections []*Selection
	actions    []*Action

	tag      string
	group    string
	remoteID string

	duration       ToastDuration
	scenario       Scenario
	launch         string
	useButtonStyle *bool
	expiresIn      time.Duration
}

// NewToast creates an empty toast.
func NewToast() *Toast {
	return &Toast{}
}

// Text1 sets the first text line (the title).
func (t *Toast) Text1(text *Text) *Toast {
	t.texts[0] = text
	return t
}

// Text2 sets the second text line.
func (t *Toast) Text2(text *Text) *Toast {
	t.texts[1] = text
	return t
}

// Text3 sets the third text line. This is the line that may carry
// attribution placement.
func (t *Toast) Text3(text *Text) *Toast {
	t.texts[2] = text
	return t
}

// Image sets the image for a slot id. Slots are serialized in
// ascending id order; setting an already used id replaces that slot.
func (t *Toast) Image(id uint8, image *Image) *Toast {
	for i := range t.images {
		if t.images[i].id == id {
			t.images[i].image = image
			return t
		}
		if t.images[i].id > id {
			t.images = append(t.images[:i], append([]imageSlot{{id: id, image: image}}, t.images[i:]...)...)
			return t
		}
	}
	t.images = append(t.images, imageSlot{id: id, image: image})
	return t
}

// Audio sets the audio element. A toast has at most one; later calls
// replace it.
func (t *Toast) Audio(audio *Audio) *Toast {
	t.audio = audio
	return t
}

// Header sets the header of the toast.
func (t *Toast) Header(header *Header) *Toast {
	t.header = header
	return t
}

// Input sets the input field. A toast has at most one; later calls
// replace it.
func (t *Toast) Input(input *Input) *Toast {
	t.input = input
	return t
}

// Selection appends a choice for a selection-type input. Selections
// are only meaningful when an InputTypeSelection input is set.
func (t *Toast) Selection(selection *Selection) *Toast {
	t.selections = append(t.selections, selection)
	return t
}

// Action appends an action button.
func (t *Toast) Action(action *Action) *Toast {
	t.actions = append(t.actions, action)
	return t
}

// Tag sets the correlation tag of the toast. The tag is reported back
// in event results and can later target the toast for removal.
func (t *Toast) Tag(tag string) *Toast {
	t.tag = tag
	return t
}

// Group sets the correlation group of the toast.
func (t *Toast) Group(group string) *Toast {
	t.group = group
	return t
}

// RemoteID sets an id correlating this toast with a remote source.
func (t *Toast) RemoteID(id string) *Toast {
	t.remoteID = id
	return t
}

// Duration sets how long the toast stays on screen.
func (t *Toast) Duration(d ToastDuration) *Toast {
	t.duration = d
	return t
}

// Scenario sets the scenario of the toast.
func (t *Toast) Scenario(s Scenario) *Toast {
	t.scenario = s
	return t
}

// Launch sets the argument string delivered when the user clicks the
// toast body instead of a button.
func (t *Toast) Launch(args string) *Toast {
	t.launch = args
	return t
}

// UseButtonStyle enables or disables button styles for the toast's
// actions; see Action.WithButtonStyle.
func (t *Toast) UseButtonStyle(enabled bool) *Toast {
	t.useButtonStyle = &enabled
	return t
}

// ExpiresIn sets how long after showing the toast is removed from the
// notification shade. Zero means no explicit expiration.
func (t *Toast) ExpiresIn(d time.Duration) *Toast {
	t.expiresIn = d
	return t
}

// Display ceilings the platform imposes on transient toasts, with
// slack for event delivery.
const (
	shortEventWindow = 12 * time.Second
	longEventWindow  = 30 * time.Second
)

// eventWindow is how long the platform layer keeps the event
// subscription alive after showing this toast. Zero means until a
// terminal event arrives: reminder, alarm and incoming-call toasts
// stay on screen until the user acts, so no fade-out bounds the wait.
func (t *Toast) eventWindow() time.Duration {
	switch t.scenario {
	case ScenarioReminder, ScenarioAlarm, ScenarioIncomingCall:
		return 0
	}
	if t.duration == DurationLong {
		return longEventWindow
	}
	return shortEventWindow
}
