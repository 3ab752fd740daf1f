package ui

import (
	"strings"
)

// EventName identifies an event an Element can dispatch.
type EventName string

const (
	EventClick  EventName = "click"
	EventChange EventName = "change"
)

// Handler runs when its event is dispatched on the element it is attached to.
type Handler func(target *Element)

// Child is either Text or an *Element.
type Child interface {
	isChild()
}

// Text is a text node.
type Text string

func (Text) isChild()     {}
func (*Element) isChild() {}

// Spec describes one element to build. Ids and form values go in Attributes
// ("id", "value"); class names and handlers have their own fields.
type Spec struct {
	Tag        string
	ClassNames []string
	Attributes map[string]string
	Handlers   map[EventName]Handler
	Children   []Child
}

// Element is a node of the page tree. It is not safe for concurrent use;
// shared trees are mutated through a Document.
type Element struct {
	tag      string
	classes  []string
	attrs    map[string]string
	handlers map[EventName][]Handler
	children []Child
	parent   *Element

	value    string
	hasValue bool
}

// Build returns one new, detached element for s. Nothing is validated.
func Build(s Spec) *Element {
	e := &Element{
		tag:      strings.ToLower(s.Tag),
		attrs:    make(map[string]string, len(s.Attributes)),
		handlers: make(map[EventName][]Handler, len(s.Handlers)),
	}
	if len(s.ClassNames) > 0 {
		e.classes = append([]string(nil), s.ClassNames...)
	}
	for k, v := range s.Attributes {
		e.attrs[k] = v
	}
	for ev, h := range s.Handlers {
		e.On(ev, h)
	}
	for _, c := range s.Children {
		e.AppendChild(c)
	}
	return e
}

// El is shorthand for Build with space-separated class names.
func El(tag, classes string, children ...Child) *Element {
	return Build(Spec{Tag: tag, ClassNames: strings.Fields(classes), Children: children})
}

// Option builds an <option> with the given value and label.
func Option(value, label string) *Element {
	return Build(Spec{
		Tag:        "option",
		Attributes: map[string]string{"value": value},
		Children:   []Child{Text(label)},
	})
}

func (e *Element) Tag() string       { return e.tag }
func (e *Element) ID() string        { return e.attrs["id"] }
func (e *Element) Parent() *Element  { return e.parent }
func (e *Element) Classes() []string { return append([]string(nil), e.classes...) }

func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

// On attaches h to ev. Handlers run in attach order.
func (e *Element) On(ev EventName, h Handler) {
	if h == nil {
		return
	}
	e.handlers[ev] = append(e.handlers[ev], h)
}

// Dispatch runs every handler attached for ev and reports whether any ran.
func (e *Element) Dispatch(ev EventName) bool {
	hs := e.handlers[ev]
	for _, h := range hs {
		h(e)
	}
	return len(hs) > 0
}

// Value is the element's current form value. A select reports the value of
// its chosen option, or of its first option when nothing valid is chosen.
func (e *Element) Value() string {
	if e.tag == "select" {
		opts := e.Elements()
		for _, o := range opts {
			if v, _ := o.Attr("value"); e.hasValue && v == e.value {
				return v
			}
		}
		if len(opts) > 0 {
			v, _ := opts[0].Attr("value")
			return v
		}
		return ""
	}
	if e.hasValue {
		return e.value
	}
	return e.attrs["value"]
}

func (e *Element) SetValue(v string) {
	e.value = v
	e.hasValue = true
}

// Children returns the child nodes in order.
func (e *Element) Children() []Child { return append([]Child(nil), e.children...) }

// Elements returns the element children, skipping text nodes.
func (e *Element) Elements() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text is the concatenated text content of e and its descendants.
func (e *Element) Text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case Text:
			b.WriteString(string(n))
		case *Element:
			n.writeText(b)
		}
	}
}

func (e *Element) AppendChild(c Child) {
	switch n := c.(type) {
	case nil:
		return
	case *Element:
		if n == nil {
			return
		}
		n.parent = e
	}
	e.children = append(e.children, c)
}

// Clear drops every child, like assigning an empty innerHTML.
func (e *Element) Clear() {
	for _, c := range e.children {
		if n, ok := c.(*Element); ok {
			n.parent = nil
		}
	}
	e.children = nil
	if e.tag == "select" {
		e.value, e.hasValue = "", false
	}
}

// Find returns the first element in e's subtree (e included) with the id.
func (e *Element) Find(id string) *Element {
	if id == "" {
		return nil
	}
	if e.ID() == id {
		return e
	}
	for _, c := range e.Elements() {
		if hit := c.Find(id); hit != nil {
			return hit
		}
	}
	return nil
}
