package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// displayBlocks lists the tags treated as a visible line of their own when
// previewing a message body. Anchors and inline code count as blocks here
// because chat clients render them on their own row.
var displayBlocks = map[atom.Atom]struct{}{
	atom.P:          {},
	atom.A:          {},
	atom.Div:        {},
	atom.Pre:        {},
	atom.H1:         {},
	atom.H2:         {},
	atom.H3:         {},
	atom.H4:         {},
	atom.H5:         {},
	atom.H6:         {},
	atom.Ul:         {},
	atom.Ol:         {},
	atom.Li:         {},
	atom.Blockquote: {},
	atom.Table:      {},
	atom.Tr:         {},
	atom.Td:         {},
	atom.Code:       {},
}

// IsDisplayBlock reports whether tag names a display-block element. The
// comparison is case-insensitive.
func IsDisplayBlock(tag string) bool {
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	if a == 0 {
		return false
	}
	_, ok := displayBlocks[a]
	return ok
}
