package wintoast

import "github.com/beevik/etree"

// InputType is the kind of input field.
type InputType int

const (
	// InputTypeText is a free text input field.
	InputTypeText InputType = iota + 1
	// InputTypeSelection is a drop-down selection field; populate it
	// with Toast.Selection.
	InputTypeSelection
)

func (t InputType) String() string {
	switch t {
	case InputTypeText:
		return "text"
	case InputTypeSelection:
		return "selection"
	default:
		return ""
	}
}

// Input is an input field of a toast. A toast holds at most one.
type Input struct {
	id           string
	typ          InputType
	placeholder  string
	title        string
	defaultInput string
}

// NewInput creates an input field with the given id and type. The id
// is the key under which the submitted value appears in
// ActivatedAction.Values.
func NewInput(id string, typ InputType) *Input {
	return &Input{id: id, typ: typ}
}

// WithPlaceholder sets the placeholder content of the input.
func (i *Input) WithPlaceholder(content string) *Input {
	i.placeholder = content
	return i
}

// WithTitle sets the title shown above the input.
func (i *Input) WithTitle(title string) *Input {
	i.title = title
	return i
}

// WithDefaultInput sets the default value, or for selection inputs the
// id of the pre-selected Selection.
func (i *Input) WithDefaultInput(value string) *Input {
	i.defaultInput = value
	return i
}

func (i *Input) writeTo(el *etree.Element) {
	el.CreateAttr("id", i.id)
	el.CreateAttr("type", i.typ.String())
	if i.placeholder != "" {
		el.CreateAttr("placeHolderContent", i.placeholder)
	}
	if i.title != "" {
		el.CreateAttr("title", i.title)
	}
	if i.defaultInput != "" {
		el.CreateAttr("defaultInput", i.defaultInput)
	}
}

// Selection is one choice of a selection-type input field.
type Selection struct {
	id      string
	content string
}

// NewSelection creates a selection with the given id and display label.
func NewSelection(id, content string) *Selection {
	return &Selection{id: id, content: content}
}

func (s *Selection) writeTo(el *etree.Element) {
	el.CreateAttr("id", s.id)
	el.CreateAttr("content", s.content)
}
