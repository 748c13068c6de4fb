package client

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Conceptual-Machines/music-creator/internal/view"
)

// Event names dispatched by the controller
const (
	EventClick  = "click"
	EventInput  = "input"
	EventChange = "change"
)

// File is a file picked in a file input
type File struct {
	Name string
	Data []byte
}

// Document is a minimal mutable element tree. Every element shares the
// document lock, so notification timers and user actions may touch it
// from different goroutines.
type Document struct {
	mu   sync.Mutex
	body *Element
}

// Element is an element or text node of a Document
type Element struct {
	doc      *Document
	tag      string
	attrs    map[string]string
	classes  []string
	value    string
	checked  bool
	text     string
	file     *File
	parent   *Element
	children []*Element
	handlers map[string][]func()
}

func NewDocument() *Document {
	d := &Document{}
	d.body = &Element{doc: d, tag: "body"}
	return d
}

// Body returns the root element
func (d *Document) Body() *Element {
	return d.body
}

// Mount builds n and appends it to the body
func (d *Document) Mount(n view.Node) *Element {
	return d.body.Append(n)
}

// Lookup returns the attached element with the given id. A missing element
// is a normal outcome.
func (d *Document) Lookup(id string) (*Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var found *Element
	d.body.walk(func(e *Element) bool {
		if e.attrs["id"] == id {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// QueryClass returns the attached elements carrying class, in document order
func (d *Document) QueryClass(class string) []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*Element
	d.body.walk(func(e *Element) bool {
		if e.hasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

func (d *Document) build(n view.Node, parent *Element) *Element {
	if n.IsText() {
		return &Element{doc: d, text: n.Text, parent: parent}
	}

	e := &Element{doc: d, tag: n.Tag, parent: parent, attrs: make(map[string]string, len(n.Attrs))}
	for _, a := range n.Attrs {
		e.attrs[a.Key] = a.Value
	}
	e.classes = n.Classes()
	_, e.checked = e.attrs["checked"]
	for _, c := range n.Children {
		e.children = append(e.children, d.build(c, e))
	}

	switch e.tag {
	case "input":
		e.value = e.attrs["value"]
	case "textarea":
		e.value = n.TextContent()
	case "select":
		e.value = e.defaultOption()
	}
	return e
}

// walk visits e and its descendants until fn returns false
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func (e *Element) hasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (e *Element) textContent() string {
	if e.tag == "" {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.textContent())
	}
	return b.String()
}

func (e *Element) optionValues() []string {
	var values []string
	for _, c := range e.children {
		if c.tag == "option" {
			values = append(values, c.attrs["value"])
		}
	}
	return values
}

func (e *Element) defaultOption() string {
	values := e.optionValues()
	for _, c := range e.children {
		if _, ok := c.attrs["selected"]; ok && c.tag == "option" {
			return c.attrs["value"]
		}
	}
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ID returns the id attribute
func (e *Element) ID() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.attrs["id"]
}

// Attr returns an attribute value
func (e *Element) Attr(key string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, ok := e.attrs[key]
	return v, ok
}

// Value is the current value of a form control
func (e *Element) Value() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.value
}

// SetValue sets a form control value the way a browser would: selects only
// take one of their option values and range inputs stay within bounds.
func (e *Element) SetValue(v string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	switch {
	case e.tag == "select":
		e.value = ""
		for _, option := range e.optionValues() {
			if option == v {
				e.value = v
				break
			}
		}
	case e.tag == "input" && e.attrs["type"] == "range":
		e.value = e.clampRange(v)
	default:
		e.value = v
	}
}

func (e *Element) clampRange(v string) string {
	lo, err := strconv.Atoi(e.attrs["min"])
	if err != nil {
		lo = 0
	}
	hi, err := strconv.Atoi(e.attrs["max"])
	if err != nil {
		hi = 100
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		n = lo + (hi-lo)/2
	}
	n = max(lo, min(hi, n))
	return strconv.Itoa(n)
}

func (e *Element) Checked() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.checked
}

func (e *Element) SetChecked(checked bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.checked = checked
}

// Text returns the text content of the subtree
func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.textContent()
}

// SetText replaces the children with a single text node
func (e *Element) SetText(s string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.children = []*Element{{doc: e.doc, text: s, parent: e}}
}

// Options lists the values of a select's options
func (e *Element) Options() []string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.optionValues()
}

func (e *Element) HasClass(class string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.hasClass(class)
}

func (e *Element) AddClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if !e.hasClass(class) {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) RemoveClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	kept := e.classes[:0]
	for _, c := range e.classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.classes = kept
}

// Append builds n and adds it as the last child
func (e *Element) Append(n view.Node) *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	child := e.doc.build(n, e)
	e.children = append(e.children, child)
	return child
}

// ReplaceChildren swaps the subtree for freshly built nodes. A select falls
// back to its default option.
func (e *Element) ReplaceChildren(nodes ...view.Node) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.children = e.children[:0]
	for _, n := range nodes {
		e.children = append(e.children, e.doc.build(n, e))
	}
	if e.tag == "select" {
		e.value = e.defaultOption()
	}
}

// Remove detaches e from its parent. Removing twice is a no-op.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Attached reports whether e is reachable from the document body
func (e *Element) Attached() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for p := e; p != nil; p = p.parent {
		if p == e.doc.body {
			return true
		}
	}
	return false
}

// File returns the file picked in a file input
func (e *Element) File() *File {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.file
}

func (e *Element) SetFile(f *File) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.file = f
}

// On registers fn for an event
func (e *Element) On(event string, fn func()) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[string][]func())
	}
	e.handlers[event] = append(e.handlers[event], fn)
}

// Dispatch runs the handlers of an event synchronously, outside the lock
func (e *Element) Dispatch(event string) {
	e.doc.mu.Lock()
	handlers := append([]func(){}, e.handlers[event]...)
	e.doc.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
