package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/hyperifyio/lineclip/internal/markup"
)

// FirstVisibleLine reduces an HTML message body to the markup of its first
// visible line. The first element of the fragment is the root; among the
// root's children the last display-block element is kept as the current
// line, markup after it and display blocks before it are dropped, and text
// before it is cut at its first newline. The root's own tag is part of the
// result. Empty, whitespace-only or element-free input yields "".
//
// FirstVisibleLine never fails on malformed markup and is safe for
// concurrent use.
func FirstVisibleLine(body string) string {
	root := clip(body)
	if root == nil {
		return ""
	}
	return markup.Render(root)
}

// PlainText returns the visible text of FirstVisibleLine(body) with runs of
// whitespace collapsed to single spaces.
func PlainText(body string) string {
	root := clip(body)
	if root == nil {
		return ""
	}
	return collapseSpaces(markup.TextContent(root))
}

func clip(body string) *markup.Element {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	root := markup.FirstElement(markup.ParseFragment(body))
	if root == nil {
		return nil
	}
	return root.WithChildren(firstLineChildren(root.Children))
}

// firstLineChildren folds over children from last to first and returns the
// nodes that make up the first visible line, in document order. The input
// slice is not modified.
func firstLineChildren(children []markup.Node) []markup.Node {
	current := lastDisplayBlock(children)
	kept := make([]markup.Node, 0, len(children))
	keptBlocks := 0
	for i := len(children) - 1; i >= 0; i-- {
		if current >= 0 && i > current {
			// trails the current line
			continue
		}
		switch n := children[i].(type) {
		case *markup.Element:
			if markup.IsDisplayBlock(n.Tag) {
				if keptBlocks > 0 {
					continue
				}
				keptBlocks = 1
			}
			kept = append(kept, n)
		case markup.Text:
			kept = append(kept, markup.Text{Content: firstLine(n.Content)})
		default:
			kept = append(kept, n)
		}
	}
	reverse(kept)
	return kept
}

// lastDisplayBlock returns the index of the last display-block element in
// children, or -1.
func lastDisplayBlock(children []markup.Node) int {
	for i := len(children) - 1; i >= 0; i-- {
		if el, ok := children[i].(*markup.Element); ok && markup.IsDisplayBlock(el.Tag) {
			return i
		}
	}
	return -1
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func reverse(nodes []markup.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ClipRunes shortens s to at most max runes, ending in "…" when it had to
// cut. max <= 0 disables clipping.
func ClipRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	n := 0
	for i := range s {
		if n == max-1 {
			return strings.TrimRight(s[:i], " ") + "…"
		}
		n++
	}
	return s
}
