package wintoast

import "github.com/beevik/etree"

// document builds the notification document the platform parses.
// Element order is fixed by the schema:
//
//	toast
//	  header?
//	  visual > binding > text{1..3}? image*
//	  audio?
//	  actions > input? > selection* , action*
func (t *Toast) document() *etree.Document {
	doc := etree.NewDocument()
	toastEl := doc.CreateElement("toast")

	if t.scenario != 0 {
		toastEl.CreateAttr("scenario", t.scenario.String())
	}
	if t.launch != "" {
		toastEl.CreateAttr("launch", t.launch)
	}
	if t.duration != 0 {
		toastEl.CreateAttr("duration", t.duration.String())
	}
	if t.useButtonStyle != nil {
		toastEl.CreateAttr("useButtonStyle", boolString(*t.useButtonStyle))
	}

	if t.header != nil {
		t.header.writeTo(toastEl.CreateElement("header"))
	}

	bindingEl := toastEl.CreateElement("visual").CreateElement("binding")
	bindingEl.CreateAttr("template", "ToastGeneric")

	for i, text := range t.texts {
		if text == nil {
			continue
		}
		text.writeTo(i+1, bindingEl.CreateElement("text"))
	}

	for _, slot := range t.images {
		slot.image.writeTo(slot.id, bindingEl.CreateElement("image"))
	}

	if t.audio != nil {
		t.audio.writeTo(toastEl.CreateElement("audio"))
	}

	if t.input != nil || len(t.actions) > 0 {
		actionsEl := toastEl.CreateElement("actions")

		if t.input != nil {
			inputEl := actionsEl.CreateElement("input")
			t.input.writeTo(inputEl)
			for _, selection := range t.selections {
				selection.writeTo(inputEl.CreateElement("selection"))
			}
		}

		for _, action := range t.actions {
			action.writeTo(actionsEl.CreateElement("action"))
		}
	}

	return doc
}

// XML returns the serialized notification document. This is what
// Show submits to the platform. The document is written to an
// in-memory buffer, so the write cannot fail.
func (t *Toast) XML() string {
	s, _ := t.document().WriteToString()
	return s
}
