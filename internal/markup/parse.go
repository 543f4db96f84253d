package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses s as the contents of a <body> element using the HTML5
// parsing algorithm. Malformed markup is repaired the way a browser would
// repair it; the function never fails and returns nil when nothing could be
// parsed.
func ParseFragment(s string) []Node {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil
	}
	out := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		if conv := fromHTML(n); conv != nil {
			out = append(out, conv)
		}
	}
	return out
}

func fromHTML(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return Text{Content: n.Data}
	case html.CommentNode:
		return Comment{Content: n.Data}
	case html.ElementNode:
		el := &Element{Tag: n.Data, Namespace: n.Namespace}
		if len(n.Attr) > 0 {
			el.Attrs = make([]Attr, len(n.Attr))
			for i, a := range n.Attr {
				el.Attrs[i] = Attr{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if conv := fromHTML(c); conv != nil {
				el.Children = append(el.Children, conv)
			}
		}
		return el
	}
	// Doctype and raw document nodes cannot appear inside a body fragment.
	return nil
}
