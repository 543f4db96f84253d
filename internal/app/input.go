package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// openInput opens path (stdin for "-") and, when label names a character
// encoding, decodes the stream to UTF-8.
func openInput(path, label string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if isStdio(path) {
		rc = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		rc = f
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return rc, nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		rc.Close()
		return nil, fmt.Errorf("unknown charset %q", label)
	}
	if name == "utf-8" {
		return rc, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{transform.NewReader(rc, enc.NewDecoder()), rc}, nil
}
