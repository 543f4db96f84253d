package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lineclip/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		envFiles    string
		showVersion bool
		cfg         app.Config
	)

	flag.StringVar(&configPath, "config", os.Getenv("LINECLIP_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading the environment")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.StringVar(&cfg.InputPath, "input", "", "Input file, or - for stdin (default -)")
	flag.StringVar(&cfg.OutputPath, "output", "", "Output file, or - for stdout (default -)")
	flag.StringVar(&cfg.Format, "format", "", "Input format: html (one fragment) or jsonl (one {id,html} per line) (default html)")
	flag.StringVar(&cfg.Charset, "charset", "", "Input character encoding label, e.g. windows-1252; empty means UTF-8")
	flag.BoolVar(&cfg.TextOnly, "text", false, "Print plain text instead of markup (html format)")
	flag.IntVar(&cfg.MaxRunes, "max.runes", 0, "Clip the plain-text preview to N runes; 0 disables")
	flag.IntVar(&cfg.Workers, "workers", 0, "Concurrent previews in jsonl mode (default number of CPUs)")
	flag.StringVar(&cfg.CacheDir, "cache.dir", "", "Preview cache directory; empty disables caching")
	flag.DurationVar(&cfg.CacheMaxAge, "cache.maxAge", 0, "Purge cache entries older than this before the run; 0 disables")
	flag.BoolVar(&cfg.CacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cfg.CacheStrictPerms, "cache.strictPerms", false, "Restrict cache permissions (0700 dirs, 0600 files)")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Fatal().Err(err).Msg("load env files")
	}
	// Precedence: flags, then env, then config file, then defaults.
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps run errors to process exit codes: 2 when the input held
// nothing to preview, 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, app.ErrNoMessages) {
		return 2
	}
	return 1
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
