package app

import "time"

// Input formats accepted by the application.
const (
	// FormatHTML treats the whole input as one message body.
	FormatHTML = "html"
	// FormatJSONL reads one {"id","html"} message per line.
	FormatJSONL = "jsonl"
)

// Config holds runtime configuration for the application.
type Config struct {
	// InputPath and OutputPath name files; "-" or "" means stdin/stdout.
	InputPath  string
	OutputPath string

	Format  string
	Charset string

	// Preview shaping
	TextOnly bool
	MaxRunes int
	Workers  int

	// Cache
	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool

	Verbose bool
}
