package client

import (
	"github.com/Conceptual-Machines/music-creator/internal/view"
)

// Modals mounts the two overlays once and toggles their visibility
type Modals struct {
	doc     *Document
	mounted bool
	onOpen  map[string]func()
}

func NewModals(doc *Document) *Modals {
	return &Modals{doc: doc, onOpen: make(map[string]func())}
}

// Mount builds the style and lyrics overlays into the document and wires the
// sliders and close buttons. Later calls do nothing.
func (m *Modals) Mount() {
	if m.mounted {
		return
	}
	m.mounted = true

	m.doc.Mount(view.StyleModal())
	m.doc.Mount(view.LyricsModal())

	m.mirrorSlider(view.IDOriginalInfluence, view.IDOriginalInfluenceValue)
	m.mirrorSlider(view.IDCreativity, view.IDCreativityValue)

	for _, btn := range m.doc.QueryClass(view.ClassModalClose) {
		if target, ok := btn.Attr(view.AttrCloses); ok {
			btn.On(EventClick, func() { m.Close(target) })
		}
	}
}

func (m *Modals) mirrorSlider(sliderID, labelID string) {
	slider, ok := m.doc.Lookup(sliderID)
	if !ok {
		return
	}
	slider.On(EventInput, func() {
		if label, ok := m.doc.Lookup(labelID); ok {
			label.SetText(slider.Value() + "%")
		}
	})
}

// OnOpen registers a hook run each time the overlay is opened
func (m *Modals) OnOpen(id string, fn func()) {
	m.onOpen[id] = fn
}

// Open reveals an overlay; an unknown id is ignored
func (m *Modals) Open(id string) {
	el, ok := m.doc.Lookup(id)
	if !ok {
		return
	}
	el.RemoveClass(view.ClassHidden)
	if fn, ok := m.onOpen[id]; ok {
		fn()
	}
}

// Close hides an overlay; an unknown id is ignored
func (m *Modals) Close(id string) {
	if el, ok := m.doc.Lookup(id); ok {
		el.AddClass(view.ClassHidden)
	}
}

// IsOpen reports whether an overlay is visible
func (m *Modals) IsOpen(id string) bool {
	el, ok := m.doc.Lookup(id)
	return ok && !el.HasClass(view.ClassHidden)
}
