package ui

import "sync"

// Document owns a page tree. Its methods serialize access, so concurrent
// writers never interleave; the last Replace on an element wins.
type Document struct {
	mu   sync.Mutex
	root *Element
}

func NewDocument(root *Element) *Document {
	if root == nil {
		root = El("body", "")
	}
	return &Document{root: root}
}

func (d *Document) Root() *Element { return d.root }

// GetElementByID returns nil when no element carries the id.
func (d *Document) GetElementByID(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root.Find(id)
}

// Value reads the form value of the element with the id ("" if missing).
func (d *Document) Value(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el := d.root.Find(id); el != nil {
		return el.Value()
	}
	return ""
}

func (d *Document) SetValue(id, v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el := d.root.Find(id); el != nil {
		el.SetValue(v)
	}
}

// Replace clears the element with the id and appends children in order, as
// one step. It reports false when the id is unknown.
func (d *Document) Replace(id string, children ...Child) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := d.root.Find(id)
	if el == nil {
		return false
	}
	el.Clear()
	for _, c := range children {
		el.AppendChild(c)
	}
	return true
}

// Dispatch fires ev on the element with the id. The lock is not held while
// handlers run, so handlers may use the Document.
func (d *Document) Dispatch(id string, ev EventName) bool {
	el := d.GetElementByID(id)
	if el == nil {
		return false
	}
	return el.Dispatch(ev)
}

// View runs fn with the tree locked. fn must not call back into d.
func (d *Document) View(fn func(root *Element)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.root)
}

// Render draws the element with the id using th.
func (d *Document) Render(id string, th Theme) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := d.root.Find(id)
	if el == nil {
		return ""
	}
	return Render(el, th)
}
