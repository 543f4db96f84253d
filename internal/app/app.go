package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lineclip/internal/cache"
	"github.com/hyperifyio/lineclip/internal/preview"
)

// ErrNoMessages is returned when a jsonl input holds no usable message.
var ErrNoMessages = errors.New("no usable messages")

type App struct {
	cfg     Config
	clipper preview.LineClipper
	cache   *cache.PreviewCache
}

// New validates cfg and prepares the preview cache.
func New(ctx context.Context, cfg Config) (*App, error) {
	cfg = cfg.WithDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, clipper: preview.LineClipper{MaxRunes: cfg.MaxRunes}}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				return nil, fmt.Errorf("clear cache: %w", err)
			}
			log.Debug().Str("dir", cfg.CacheDir).Msg("cache cleared")
		}
		if cfg.CacheMaxAge > 0 {
			removed, err := cache.PurgeOlderThan(cfg.CacheDir, cfg.CacheMaxAge)
			if err != nil {
				// not fatal; stale entries only cost disk
				log.Warn().Err(err).Msg("cache purge failed")
			} else if removed > 0 {
				log.Debug().Int("removed", removed).Msg("purged expired previews")
			}
		}
		a.cache = &cache.PreviewCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
	}
	return a, nil
}

// Close releases resources held by the App.
func (a *App) Close() {}

// Run reads the configured input, previews it and writes the result.
func (a *App) Run(ctx context.Context) error {
	in, err := openInput(a.cfg.InputPath, a.cfg.Charset)
	if err != nil {
		return err
	}
	defer in.Close()

	out, closeOut, err := openOutput(a.cfg.OutputPath)
	if err != nil {
		return err
	}

	switch a.cfg.Format {
	case FormatJSONL:
		err = a.runJSONL(ctx, in, out)
	default:
		err = a.runHTML(ctx, in, out)
	}
	if cerr := closeOut(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func (a *App) runHTML(ctx context.Context, in io.Reader, out io.Writer) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	res := a.previewOne(ctx, preview.Message{HTML: string(b)})
	line := res.HTML
	if a.cfg.TextOnly {
		line = res.Text
	}
	log.Debug().Int("bytes", len(b)).Int("preview_bytes", len(line)).Msg("previewed fragment")
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func isStdio(path string) bool {
	return strings.TrimSpace(path) == "" || path == "-"
}
