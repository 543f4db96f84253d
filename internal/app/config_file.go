package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "runtime"
    "strings"
    "time"

    "golang.org/x/net/html/charset"
    yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
    Input   string `yaml:"input" json:"input"`
    Output  string `yaml:"output" json:"output"`
    Format  string `yaml:"format" json:"format"`
    Charset string `yaml:"charset" json:"charset"`

    Preview struct {
        TextOnly bool `yaml:"textOnly" json:"textOnly"`
        MaxRunes int  `yaml:"maxRunes" json:"maxRunes"`
    } `yaml:"preview" json:"preview"`

    Workers int  `yaml:"workers" json:"workers"`
    Verbose bool `yaml:"verbose" json:"verbose"`

    Cache struct {
        Dir         string        `yaml:"dir" json:"dir"`
        MaxAge      time.Duration `yaml:"maxAge" json:"maxAge"`
        Clear       bool          `yaml:"clear" json:"clear"`
        StrictPerms bool          `yaml:"strictPerms" json:"strictPerms"`
    } `yaml:"cache" json:"cache"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset. Run it after flags and ApplyEnvToConfig so that both
// take precedence over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.InputPath == "" && fc.Input != "" { cfg.InputPath = fc.Input }
    if cfg.OutputPath == "" && fc.Output != "" { cfg.OutputPath = fc.Output }
    if cfg.Format == "" && fc.Format != "" { cfg.Format = fc.Format }
    if cfg.Charset == "" && fc.Charset != "" { cfg.Charset = fc.Charset }

    if !cfg.TextOnly && fc.Preview.TextOnly { cfg.TextOnly = true }
    if cfg.MaxRunes == 0 && fc.Preview.MaxRunes > 0 { cfg.MaxRunes = fc.Preview.MaxRunes }
    if cfg.Workers == 0 && fc.Workers > 0 { cfg.Workers = fc.Workers }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }

    if cfg.CacheDir == "" && fc.Cache.Dir != "" { cfg.CacheDir = fc.Cache.Dir }
    if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 { cfg.CacheMaxAge = fc.Cache.MaxAge }
    if !cfg.CacheClear && fc.Cache.Clear { cfg.CacheClear = true }
    if !cfg.CacheStrictPerms && fc.Cache.StrictPerms { cfg.CacheStrictPerms = true }
}

// WithDefaults fills the fields nothing else has set.
func (c Config) WithDefaults() Config {
    if c.InputPath == "" { c.InputPath = "-" }
    if c.OutputPath == "" { c.OutputPath = "-" }
    if c.Format == "" { c.Format = FormatHTML }
    if c.Workers == 0 { c.Workers = runtime.NumCPU() }
    return c
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
    switch cfg.Format {
    case FormatHTML, FormatJSONL:
    default:
        return fmt.Errorf("config: unknown format %q (want %s or %s)", cfg.Format, FormatHTML, FormatJSONL)
    }
    if cfg.MaxRunes < 0 || cfg.Workers < 0 || cfg.CacheMaxAge < 0 {
        return errors.New("config: negative limits are not allowed")
    }
    if s := strings.TrimSpace(cfg.Charset); s != "" {
        if enc, _ := charset.Lookup(s); enc == nil {
            return fmt.Errorf("config: unknown charset %q", s)
        }
    }
    if cfg.CacheClear && strings.TrimSpace(cfg.CacheDir) == "" {
        return errors.New("config: cache.clear requires cache.dir")
    }
    return nil
}
