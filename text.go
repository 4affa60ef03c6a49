package wintoast

import (
	"strconv"

	"github.com/beevik/etree"
)

// TextPlacement controls where a text line is rendered.
type TextPlacement int

const (
	// TextPlacementAttribution renders the line as attribution text at
	// the bottom of the toast.
	TextPlacementAttribution TextPlacement = iota + 1
)

func (p TextPlacement) String() string {
	switch p {
	case TextPlacementAttribution:
		return "attribution"
	default:
		return ""
	}
}

// Text is one of the up to three text lines of a toast.
type Text struct {
	content   string
	placement TextPlacement
}

// NewText creates a text line with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// WithPlacement sets the placement of the text line.
func (t *Text) WithPlacement(placement TextPlacement) *Text {
	t.placement = placement
	return t
}

// writeTo fills el with this line's attributes and content. The
// positional index (1..3) comes from the containing toast, not the
// text itself.
func (t *Text) writeTo(index int, el *etree.Element) {
	el.CreateAttr("id", strconv.Itoa(index))
	if t.placement != 0 {
		el.CreateAttr("placement", t.placement.String())
	}
	el.SetText(t.content)
}
