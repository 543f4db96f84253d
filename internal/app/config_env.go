package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.Format == "" {
        cfg.Format = os.Getenv("LINECLIP_FORMAT")
    }
    if cfg.Charset == "" {
        cfg.Charset = os.Getenv("LINECLIP_CHARSET")
    }
    if cfg.CacheDir == "" {
        cfg.CacheDir = os.Getenv("CACHE_DIR")
    }
    if cfg.MaxRunes == 0 {
        cfg.MaxRunes = envInt("LINECLIP_MAX_RUNES")
    }
    if cfg.Workers == 0 {
        cfg.Workers = envInt("LINECLIP_WORKERS")
    }
    if cfg.CacheMaxAge == 0 {
        if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.CacheMaxAge = d
            }
        }
    }

    setBool := func(dst *bool, envKey string) {
        if *dst { return }
        if envTrue(envKey) { *dst = true }
    }
    setBool(&cfg.TextOnly, "LINECLIP_TEXT_ONLY")
    setBool(&cfg.Verbose, "VERBOSE")
    setBool(&cfg.CacheClear, "CACHE_CLEAR")
    setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
}

func envInt(key string) int {
    s := strings.TrimSpace(os.Getenv(key))
    if s == "" { return 0 }
    n, err := strconv.Atoi(s)
    if err != nil || n < 0 { return 0 }
    return n
}

func envTrue(key string) bool {
    switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
    case "1", "true", "yes", "on":
        return true
    }
    return false
}
