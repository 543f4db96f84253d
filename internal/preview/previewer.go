package preview

import "github.com/hyperifyio/lineclip/internal/markup"

// Message is a chat message body awaiting a preview.
type Message struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// Result is the preview of one Message.
type Result struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Previewer defines a minimal interface for preview strategies.
// Implementations must be deterministic and free of side effects.
type Previewer interface {
	Preview(msg Message) Result
}

// LineClipper previews a message by its first visible line.
type LineClipper struct {
	// MaxRunes clips the plain-text preview; 0 disables clipping.
	MaxRunes int
}

func (c LineClipper) Preview(msg Message) Result {
	root := clip(msg.HTML)
	if root == nil {
		return Result{ID: msg.ID}
	}
	return Result{
		ID:   msg.ID,
		HTML: markup.Render(root),
		Text: ClipRunes(collapseSpaces(markup.TextContent(root)), c.MaxRunes),
	}
}
