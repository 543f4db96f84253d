package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/lineclip/internal/cache"
	"github.com/hyperifyio/lineclip/internal/preview"
)

// maxLineBytes bounds a single jsonl message line.
const maxLineBytes = 8 << 20

// readMessages decodes one message per non-blank line. Lines that are not a
// JSON message object are logged and skipped.
func readMessages(r io.Reader) ([]preview.Message, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var msgs []preview.Message
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var m preview.Message
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed message")
			continue
		}
		msgs = append(msgs, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return msgs, nil
}

func (a *App) runJSONL(ctx context.Context, in io.Reader, out io.Writer) error {
	msgs, err := readMessages(in)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return ErrNoMessages
	}
	results, err := a.previewAll(ctx, msgs)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("messages", len(msgs)).Msg("previews written")
	return nil
}

// previewAll previews msgs on a bounded pool of goroutines. Results keep the
// input order.
func (a *App) previewAll(ctx context.Context, msgs []preview.Message) ([]preview.Result, error) {
	results := make([]preview.Result, len(msgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i := range msgs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.previewOne(gctx, msgs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// previewOne consults the cache before clipping. Cache failures degrade to
// an uncached preview.
func (a *App) previewOne(ctx context.Context, msg preview.Message) preview.Result {
	if a.cache == nil {
		return a.clipper.Preview(msg)
	}
	key := cache.KeyFrom(a.clipper.MaxRunes, msg.HTML)
	if b, ok, err := a.cache.Get(ctx, key); err != nil {
		log.Debug().Err(err).Msg("preview cache read failed")
	} else if ok {
		var res preview.Result
		if err := json.Unmarshal(b, &res); err == nil {
			res.ID = msg.ID
			log.Debug().Str("id", msg.ID).Bool("cache_hit", true).Msg("preview")
			return res
		}
	}
	res := a.clipper.Preview(msg)
	b, err := json.Marshal(preview.Result{HTML: res.HTML, Text: res.Text})
	if err == nil {
		err = a.cache.Save(ctx, key, b)
	}
	if err != nil {
		log.Debug().Err(err).Msg("preview cache write failed")
	}
	log.Debug().Str("id", msg.ID).Bool("cache_hit", false).Msg("preview")
	return res
}
