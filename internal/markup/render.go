package markup

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render serializes n, including an element's own start and end tags. Text
// and attribute values are escaped. A nil node renders as "".
func Render(n Node) string {
	var buf bytes.Buffer
	if err := RenderTo(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// RenderTo writes the serialization of n to w.
func RenderTo(w io.Writer, n Node) error {
	if n == nil {
		return nil
	}
	if el, ok := n.(*Element); ok && el == nil {
		return nil
	}
	return html.Render(w, toHTML(n))
}

func toHTML(n Node) *html.Node {
	switch v := n.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: v.Content}
	case Comment:
		return &html.Node{Type: html.CommentNode, Data: v.Content}
	case *Element:
		out := &html.Node{
			Type:      html.ElementNode,
			Data:      v.Tag,
			Namespace: v.Namespace,
		}
		if v.Namespace == "" {
			out.DataAtom = atom.Lookup([]byte(v.Tag))
		}
		if len(v.Attrs) > 0 {
			out.Attr = make([]html.Attribute, len(v.Attrs))
			for i, a := range v.Attrs {
				out.Attr[i] = html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
			}
		}
		for _, c := range v.Children {
			out.AppendChild(toHTML(c))
		}
		return out
	}
	return &html.Node{Type: html.TextNode}
}
