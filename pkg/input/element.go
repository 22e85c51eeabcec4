package input

import (
	"slices"

	"golang.org/x/net/html"

	"github.com/goliatone/go-forminput/pkg/classnames"
)

// Element is a handle onto a rendered <input> node. Changes made through it
// are reflected the next time the tree is written.
type Element struct {
	node *html.Node
}

// Node exposes the underlying html node.
func (e *Element) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// TagName returns the element tag, "input" for handles produced by Render.
func (e *Element) TagName() string {
	if e == nil || e.node == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of key and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil || e.node == nil {
		return "", false
	}
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets key to value, appending the attribute when it is missing.
// Keys rejected by ValidAttributeName are ignored.
func (e *Element) SetAttr(key, value string) {
	if e == nil || e.node == nil || !ValidAttributeName(key) {
		return
	}
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr drops key if present.
func (e *Element) RemoveAttr(key string) {
	if e == nil || e.node == nil {
		return
	}
	e.node.Attr = slices.DeleteFunc(e.node.Attr, func(attr html.Attribute) bool {
		return attr.Namespace == "" && attr.Key == key
	})
}

// Value returns the current value attribute.
func (e *Element) Value() string {
	value, _ := e.Attr("value")
	return value
}

// SetValue replaces the value attribute.
func (e *Element) SetValue(value string) {
	e.SetAttr("value", value)
}

// Focus marks the element to receive focus when the page loads.
func (e *Element) Focus() {
	e.SetAttr("autofocus", "")
}

// Blur clears a pending focus request.
func (e *Element) Blur() {
	e.RemoveAttr("autofocus")
}

// Focused reports whether the element requests focus.
func (e *Element) Focused() bool {
	_, ok := e.Attr("autofocus")
	return ok
}

// ClassList returns the class tokens in attribute order.
func (e *Element) ClassList() []string {
	class, _ := e.Attr("class")
	return classnames.Fields(class)
}

// HasClass reports whether token is one of the element classes.
func (e *Element) HasClass(token string) bool {
	return slices.Contains(e.ClassList(), token)
}

// Ref receives the Element rendered for the <input>. The component never
// keeps or releases the reference; it only hands it over.
type Ref interface {
	Attach(el *Element)
}

// RefObject is a Ref that stores the most recently attached element.
// It is not safe for concurrent renders.
type RefObject struct {
	current *Element
}

// NewRef returns an empty RefObject.
func NewRef() *RefObject {
	return &RefObject{}
}

// Attach implements Ref.
func (r *RefObject) Attach(el *Element) {
	if r == nil {
		return
	}
	r.current = el
}

// Current returns the attached element or nil before the first render.
func (r *RefObject) Current() *Element {
	if r == nil {
		return nil
	}
	return r.current
}

// RefFunc adapts a callback into a Ref.
type RefFunc func(el *Element)

// Attach implements Ref.
func (f RefFunc) Attach(el *Element) {
	if f != nil {
		f(el)
	}
}
