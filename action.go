package wintoast

import "github.com/beevik/etree"

// ActivationType controls what happens when the user interacts with
// an action button.
type ActivationType int

const (
	// ActivationTypeForeground launches the foreground app. This is
	// the platform default.
	ActivationTypeForeground ActivationType = iota + 1
	// ActivationTypeBackground triggers the corresponding background
	// task without interrupting the user.
	ActivationTypeBackground
	// ActivationTypeProtocol launches a different app through protocol
	// activation.
	ActivationTypeProtocol
)

func (t ActivationType) String() string {
	switch t {
	case ActivationTypeForeground:
		return "foreground"
	case ActivationTypeBackground:
		return "background"
	case ActivationTypeProtocol:
		return "protocol"
	default:
		return ""
	}
}

// ActionPlacement controls where an action appears.
type ActionPlacement int

const (
	// ActionPlacementContextMenu moves the action into the toast's
	// context menu instead of rendering it as a button.
	ActionPlacementContextMenu ActionPlacement = iota + 1
)

func (p ActionPlacement) String() string {
	switch p {
	case ActionPlacementContextMenu:
		return "contextMenu"
	default:
		return ""
	}
}

// ButtonStyle is the visual style of an action button. Takes effect
// only when the toast enables button styles, see Toast.UseButtonStyle.
type ButtonStyle int

const (
	// ButtonStyleSuccess styles the button as a success button.
	ButtonStyleSuccess ButtonStyle = iota + 1
	// ButtonStyleCritical styles the button as a critical button.
	ButtonStyleCritical
)

func (s ButtonStyle) String() string {
	switch s {
	case ButtonStyleSuccess:
		return "Success"
	case ButtonStyleCritical:
		return "Critical"
	default:
		return ""
	}
}

// Action is a button shown in a toast.
type Action struct {
	content        string
	arguments      string
	typ            string
	activationType ActivationType
	placement      ActionPlacement
	buttonStyle    ButtonStyle
	inputID        string
}

// NewAction creates an action button.
//
// content is the button label. arguments is an opaque string passed
// back to the app when the user picks this action; it is what the
// activation handler receives. typ is an opaque type string.
func NewAction(content, arguments, typ string) *Action {
	return &Action{content: content, arguments: arguments, typ: typ}
}

// WithActivationType sets the activation type of the action.
func (a *Action) WithActivationType(t ActivationType) *Action {
	a.activationType = t
	return a
}

// WithPlacement sets the placement of the action.
func (a *Action) WithPlacement(p ActionPlacement) *Action {
	a.placement = p
	return a
}

// WithButtonStyle sets the visual style of the action button.
func (a *Action) WithButtonStyle(s ButtonStyle) *Action {
	a.buttonStyle = s
	return a
}

// WithInputID associates the action with an input element of the
// toast. The id should match an Input.id on the same toast; this is a
// contract with the caller, not checked structurally.
func (a *Action) WithInputID(id string) *Action {
	a.inputID = id
	return a
}

func (a *Action) writeTo(el *etree.Element) {
	el.CreateAttr("content", a.content)
	el.CreateAttr("arguments", a.arguments)
	el.CreateAttr("type", a.typ)
	if a.activationType != 0 {
		el.CreateAttr("activationType", a.activationType.String())
	}
	if a.placement != 0 {
		el.CreateAttr("placement", a.placement.String())
	}
	if a.buttonStyle != 0 {
		el.CreateAttr("hint-buttonStyle", a.buttonStyle.String())
	}
	if a.inputID != "" {
		el.CreateAttr("hint-inputId", a.inputID)
	}
}
