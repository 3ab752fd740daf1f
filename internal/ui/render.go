package ui

import (
	"strings"
)

var inlineTags = map[string]bool{
	"span": true, "b": true, "strong": true, "em": true, "a": true, "code": true,
}

// Render draws e and its subtree as terminal text. Class names pick styles
// from th (see Theme.ClassStyle).
func Render(e *Element, th Theme) string {
	if e == nil {
		return ""
	}
	var body string
	switch e.tag {
	case "select":
		body = renderSelect(e, th)
	case "button":
		body = th.Accent.Render("[ " + e.Text() + " ]")
	case "input", "textarea":
		body = e.Value()
		if body == "" {
			ph, _ := e.Attr("placeholder")
			body = th.Muted.Render(ph)
		}
	case "li":
		body = renderChildren(e, th)
		if !e.HasClass("border") {
			body = th.SymBullet + " " + body
		}
	default:
		body = renderChildren(e, th)
	}
	if len(e.classes) == 0 {
		return body
	}
	return th.ClassStyle(e.classes).Render(body)
}

func renderChildren(e *Element, th Theme) string {
	sep := "\n"
	if inlineTags[e.tag] {
		sep = ""
	}
	parts := make([]string, 0, len(e.children))
	for _, c := range e.children {
		switch n := c.(type) {
		case Text:
			parts = append(parts, string(n))
		case *Element:
			parts = append(parts, Render(n, th))
		}
	}
	return strings.Join(parts, sep)
}

func renderSelect(e *Element, th Theme) string {
	chosen := e.Value()
	lines := make([]string, 0, len(e.children))
	for _, o := range e.Elements() {
		v, _ := o.Attr("value")
		if v == chosen {
			lines = append(lines, th.Accent.Render(th.SymSelected+" "+o.Text()))
			continue
		}
		lines = append(lines, "  "+o.Text())
	}
	return strings.Join(lines, "\n")
}
