package client

import (
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalsOpenClose(t *testing.T) {
	doc := NewDocument()
	m := NewModals(doc)
	m.Mount()
	m.Mount()

	assert.Len(t, doc.Body().children, 2)
	assert.False(t, m.IsOpen(view.IDStyleModal))

	opened := 0
	m.OnOpen(view.IDStyleModal, func() { opened++ })
	m.Open(view.IDStyleModal)
	assert.True(t, m.IsOpen(view.IDStyleModal))
	assert.False(t, m.IsOpen(view.IDLyricsModal))
	assert.Equal(t, 1, opened)

	m.Close(view.IDStyleModal)
	assert.False(t, m.IsOpen(view.IDStyleModal))

	m.Open("missing")
	m.Close("missing")
}

func TestModalCloseButtons(t *testing.T) {
	doc := NewDocument()
	m := NewModals(doc)
	m.Mount()

	for _, btn := range doc.QueryClass(view.ClassModalClose) {
		target, ok := btn.Attr(view.AttrCloses)
		require.True(t, ok)
		m.Open(target)
		btn.Dispatch(EventClick)
		assert.False(t, m.IsOpen(target))
	}
}

func TestSliderMirrorsLabel(t *testing.T) {
	doc := NewDocument()
	NewModals(doc).Mount()

	label, ok := doc.Lookup(view.IDCreativityValue)
	require.True(t, ok)
	assert.Equal(t, "60%", label.Text())

	slider, _ := doc.Lookup(view.IDCreativity)
	slider.SetValue("42")
	assert.Equal(t, "60%", label.Text())
	slider.Dispatch(EventInput)
	assert.Equal(t, "42%", label.Text())

	other, _ := doc.Lookup(view.IDOriginalInfluenceValue)
	assert.Equal(t, "80%", other.Text())
}
