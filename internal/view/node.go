// Package view describes page fragments as plain node trees. The same tree is
// rendered to HTML by the server and mounted into the headless client document.
package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one element attribute; order is preserved when rendering
type Attr struct {
	Key   string
	Value string
}

// Node is an element (Tag set) or a text node (Tag empty)
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	Text     string
}

var voidElements = map[string]bool{
	"input": true,
	"meta":  true,
	"link":  true,
	"br":    true,
}

var booleanAttrs = map[string]bool{
	"checked":  true,
	"readonly": true,
	"selected": true,
	"hidden":   true,
}

// El builds an element node
func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node
func Text(s string) Node {
	return Node{Text: s}
}

// A builds an attribute list from key/value pairs
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return attrs
}

// Get returns the value of the named attribute
func (n Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the id attribute or ""
func (n Node) ID() string {
	id, _ := n.Get("id")
	return id
}

// Classes splits the class attribute
func (n Node) Classes() []string {
	class, _ := n.Get("class")
	return strings.Fields(class)
}

// IsText reports whether n is a text node
func (n Node) IsText() bool {
	return n.Tag == ""
}

// TextContent concatenates all descendant text
func (n Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Walk visits n and its descendants depth-first in document order
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first descendant with the given id
func (n Node) Find(id string) (Node, bool) {
	if n.ID() == id {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Render writes n as HTML
func Render(w io.Writer, n Node) error {
	if n.IsText() {
		_, err := io.WriteString(w, templ.EscapeString(n.Text))
		return err
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		if booleanAttrs[a.Key] && a.Value == "" {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if voidElements[n.Tag] {
		return nil
	}

	for _, c := range n.Children {
		if err := Render(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// Component adapts nodes to a templ component
func Component(nodes ...Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, n := range nodes {
			if err := Render(w, n); err != nil {
				return err
			}
		}
		return nil
	})
}
