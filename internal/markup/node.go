package markup

import "strings"

// Node is one node of a parsed markup tree. It is implemented by *Element,
// Text and Comment. A parent Element owns its Children; nodes are never
// shared between parents.
type Node interface {
	isNode()
}

// Attr is a single attribute. Attributes keep their source order.
type Attr struct {
	Namespace string
	Key       string
	Val       string
}

// Element is a tagged element with ordered children.
type Element struct {
	// Tag is the tag name as produced by the parser (lower case for HTML).
	Tag string
	// Namespace is empty for HTML elements and "svg" or "math" for foreign content.
	Namespace string
	Attrs     []Attr
	Children  []Node
}

// Text is a run of character data.
type Text struct {
	Content string
}

// Comment is an HTML comment. It carries no visible content.
type Comment struct {
	Content string
}

func (*Element) isNode() {}
func (Text) isNode()     {}
func (Comment) isNode()  {}

// Attr returns the value of the named attribute, matching case-insensitively.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// WithChildren returns a shallow copy of e whose child list is replaced by
// children. The receiver is left untouched.
func (e *Element) WithChildren(children []Node) *Element {
	cp := *e
	if len(e.Attrs) > 0 {
		cp.Attrs = append([]Attr(nil), e.Attrs...)
	}
	cp.Children = children
	return &cp
}

// FirstElement returns the first Element in nodes, or nil.
func FirstElement(nodes []Node) *Element {
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			return el
		}
	}
	return nil
}

// TextContent concatenates all text below n in document order.
func TextContent(n Node) string {
	var b strings.Builder
	collectText(&b, n)
	return b.String()
}

func collectText(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Text:
		b.WriteString(v.Content)
	case *Element:
		if v == nil {
			return
		}
		for _, c := range v.Children {
			collectText(b, c)
		}
	}
}
