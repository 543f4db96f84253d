package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lineclip.yaml")
	content := `
format: jsonl
charset: windows-1252
preview:
  textOnly: true
  maxRunes: 120
workers: 2
cache:
  dir: /var/cache/lineclip
  maxAge: 24h
  strictPerms: true
`
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var cfg Config
	ApplyFileConfig(&cfg, fc)
	if cfg.Format != FormatJSONL || cfg.Charset != "windows-1252" {
		t.Fatalf("format/charset = %q/%q", cfg.Format, cfg.Charset)
	}
	if !cfg.TextOnly || cfg.MaxRunes != 120 || cfg.Workers != 2 {
		t.Fatalf("preview settings not applied: %+v", cfg)
	}
	if cfg.CacheDir != "/var/cache/lineclip" || cfg.CacheMaxAge != 24*time.Hour || !cfg.CacheStrictPerms {
		t.Fatalf("cache settings not applied: %+v", cfg)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lineclip.json")
	if err := os.WriteFile(p, []byte(`{"format":"jsonl","preview":{"maxRunes":40}}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Format != FormatJSONL || fc.Preview.MaxRunes != 40 {
		t.Fatalf("unexpected file config: %+v", fc)
	}
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(p, []byte("format: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfigFile(p); err == nil || !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("expected yaml parse error, got %v", err)
	}
}

// Flags and env fill cfg first; the file must not override them.
func TestApplyFileConfig_DoesNotOverrideSetFields(t *testing.T) {
	var fc FileConfig
	fc.Format = FormatJSONL
	fc.Preview.MaxRunes = 10
	fc.Workers = 9
	cfg := Config{Format: FormatHTML, MaxRunes: 3}
	ApplyFileConfig(&cfg, fc)
	if cfg.Format != FormatHTML || cfg.MaxRunes != 3 {
		t.Fatalf("explicit values overridden: %+v", cfg)
	}
	if cfg.Workers != 9 {
		t.Fatalf("Workers=%d, want 9 from file", cfg.Workers)
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.InputPath != "-" || cfg.OutputPath != "-" || cfg.Format != FormatHTML || cfg.Workers < 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	ok := Config{}.WithDefaults()
	if err := ValidateConfig(ok); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cases := map[string]Config{
		"format":      {Format: "xml"},
		"negative":    {Format: FormatHTML, MaxRunes: -1},
		"charset":     {Format: FormatHTML, Charset: "klingon-8"},
		"clear nodir": {Format: FormatHTML, CacheClear: true},
	}
	for name, cfg := range cases {
		err := ValidateConfig(cfg)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.HasPrefix(err.Error(), "config:") {
			t.Errorf("%s: error %q lacks config prefix", name, err)
		}
	}
	if err := ValidateConfig(Config{Format: FormatJSONL, Charset: "ISO-8859-1"}); err != nil {
		t.Fatalf("known charset rejected: %v", err)
	}
}

func TestVersionString(t *testing.T) {
	if got := VersionString(); !strings.Contains(got, BuildVersion) || !strings.HasPrefix(got, "lineclip ") {
		t.Fatalf("version = %q", got)
	}
}
