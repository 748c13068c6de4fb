package client

import (
	"testing"
	"time"

	"github.com/Conceptual-Machines/music-creator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	doc := NewDocument()
	clock := &manualClock{}
	n := NewNotifier(doc, clock, nil)

	banner := n.Show("저장됨", KindSuccess, 0)
	require.True(t, banner.Attached())
	assert.True(t, banner.HasClass(view.ClassOffscreen))
	assert.True(t, banner.HasClass("bg-green-500"))
	assert.Contains(t, banner.Text(), "✅")
	assert.Contains(t, banner.Text(), "저장됨")

	clock.Advance(SlideInDelay)
	assert.False(t, banner.HasClass(view.ClassOffscreen))

	clock.Advance(DefaultDuration - SlideInDelay - time.Millisecond)
	assert.True(t, banner.Attached())
	assert.False(t, banner.HasClass(view.ClassOffscreen))

	clock.Advance(time.Millisecond)
	assert.True(t, banner.Attached(), "still sliding out")
	assert.True(t, banner.HasClass(view.ClassOffscreen))

	clock.Advance(SlideOutDelay - time.Millisecond)
	assert.True(t, banner.Attached())

	clock.Advance(time.Millisecond)
	assert.False(t, banner.Attached())
	assert.Zero(t, clock.Pending())
	assert.Empty(t, doc.QueryClass(view.ClassOffscreen))
}

func TestNotificationsRemoveOnlyTheirOwnNode(t *testing.T) {
	doc := NewDocument()
	clock := &manualClock{}
	n := NewNotifier(doc, clock, nil)

	short := n.Show("a", KindLoading, time.Second)
	long := n.Show("b", KindInfo, InfoDuration)
	third := n.Show("c", KindError, time.Second)

	clock.Advance(time.Second + SlideOutDelay)
	assert.False(t, short.Attached())
	assert.False(t, third.Attached())
	assert.True(t, long.Attached())

	clock.Advance(InfoDuration)
	assert.False(t, long.Attached())
}

func TestNotificationKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		bg   string
		icon string
	}{
		{KindLoading, "bg-blue-500", "⏳"},
		{KindSuccess, "bg-green-500", "✅"},
		{KindError, "bg-red-500", "❌"},
		{KindInfo, "bg-yellow-500", "💡"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var seen []Kind
			n := NewNotifier(NewDocument(), &manualClock{}, func(k Kind, _ string) { seen = append(seen, k) })
			banner := n.Show("x", tt.kind, 0)
			assert.True(t, banner.HasClass(tt.bg))
			assert.Contains(t, banner.Text(), tt.icon)
			assert.Equal(t, []Kind{tt.kind}, seen)
		})
	}
}

func TestPanelRemovedAfterDuration(t *testing.T) {
	doc := NewDocument()
	clock := &manualClock{}
	n := NewNotifier(doc, clock, nil)

	panel := n.Panel(view.El("div", nil, view.Text("분석")), AnalysisShowDuration)
	clock.Advance(AnalysisShowDuration - time.Millisecond)
	assert.True(t, panel.Attached())
	clock.Advance(time.Millisecond)
	assert.False(t, panel.Attached())
}
