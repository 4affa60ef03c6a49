package wintoast

import "github.com/beevik/etree"

// Header groups notifications under a custom header in the
// notification shade. Toasts sharing a header id are collapsed
// together; the title is what the user sees.
type Header struct {
	id             string
	title          string
	arguments      string
	activationType ActivationType
}

// NewHeader creates a header. arguments is the opaque string delivered
// when the user clicks the header itself.
func NewHeader(id, title, arguments string) *Header {
	return &Header{id: id, title: title, arguments: arguments}
}

// WithActivationType sets the activation type of the header click.
// Only foreground and protocol activation are meaningful here.
func (h *Header) WithActivationType(t ActivationType) *Header {
	h.activationType = t
	return h
}

func (h *Header) writeTo(el *etree.Element) {
	el.CreateAttr("id", h.id)
	el.CreateAttr("title", h.title)
	el.CreateAttr("arguments", h.arguments)
	if h.activationType != 0 {
		el.CreateAttr("activationType", h.activationType.String())
	}
}
