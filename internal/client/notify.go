package client

import (
	"time"

	"github.com/Conceptual-Machines/music-creator/internal/view"
)

// Kind selects the color and icon of a notification
type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification timing
const (
	DefaultDuration      = 3000 * time.Millisecond
	InfoDuration         = 8000 * time.Millisecond
	AnalysisShowDuration = 5000 * time.Millisecond
	SlideInDelay         = 100 * time.Millisecond
	SlideOutDelay        = 300 * time.Millisecond
)

type kindStyle struct {
	bgClass string
	icon    string
}

var kindStyles = map[Kind]kindStyle{
	KindLoading: {"bg-blue-500", "⏳"},
	KindSuccess: {"bg-green-500", "✅"},
	KindError:   {"bg-red-500", "❌"},
	KindInfo:    {"bg-yellow-500", "💡"},
}

// Clock schedules callbacks; tests swap in a manual clock
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// RealClock runs callbacks on time.AfterFunc goroutines
func RealClock() Clock {
	return realClock{}
}

// Notifier shows transient banners in a document
type Notifier struct {
	doc    *Document
	clock  Clock
	onShow func(kind Kind, message string)
}

func NewNotifier(doc *Document, clock Clock, onShow func(kind Kind, message string)) *Notifier {
	if clock == nil {
		clock = RealClock()
	}
	return &Notifier{doc: doc, clock: clock, onShow: onShow}
}

// Show appends a banner that slides in after SlideInDelay, starts sliding
// out after duration and is removed SlideOutDelay later. A non-positive
// duration means DefaultDuration.
func (n *Notifier) Show(message string, kind Kind, duration time.Duration) *Element {
	return n.show(message, kind, duration, nil)
}

func (n *Notifier) show(message string, kind Kind, duration time.Duration, removed func()) *Element {
	if duration <= 0 {
		duration = DefaultDuration
	}
	style, ok := kindStyles[kind]
	if !ok {
		style = kindStyles[KindInfo]
	}
	if n.onShow != nil {
		n.onShow(kind, message)
	}

	banner := n.doc.Mount(view.Notification(style.bgClass, style.icon, message))

	n.clock.AfterFunc(SlideInDelay, func() {
		banner.RemoveClass(view.ClassOffscreen)
	})
	n.clock.AfterFunc(duration, func() {
		banner.AddClass(view.ClassOffscreen)
		n.clock.AfterFunc(SlideOutDelay, func() {
			banner.Remove()
			if removed != nil {
				removed()
			}
		})
	})
	return banner
}

// Panel mounts an arbitrary node and removes it after duration
func (n *Notifier) Panel(node view.Node, duration time.Duration) *Element {
	panel := n.doc.Mount(node)
	n.clock.AfterFunc(duration, panel.Remove)
	return panel
}
