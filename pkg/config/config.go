// Package config loads dotkit settings from a TOML file.
//
// The file is optional. Lookup order is the --config flag, the DOTKIT_CONFIG
// environment variable and finally $XDG_CONFIG_HOME/dotkit/config.toml. A
// missing default file yields [Default]; a missing explicit file is an error.
//
//	[engine]
//	path = "/usr/local/bin"   # directory holding the Graphviz binaries
//	timeout = "30s"
//	default_engine = "dot"
//	default_format = "svg"
//	embedded = false          # render in-process with go-graphviz
//
//	[cache]
//	backend = "file"          # file, redis or none
//	dir = "~/.cache/dotkit"
//	ttl = "168h"
//	redis_addr = "localhost:6379"
//	namespace = ""
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 1048576
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/engine"
	"github.com/matzehuels/dotkit/pkg/errors"
)

const appName = "dotkit"

// EnvConfig names the environment variable that points at the config file.
const EnvConfig = "DOTKIT_CONFIG"

// Config is the complete dotkit configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// EngineConfig selects and bounds the layout engine.
type EngineConfig struct {
	Path          string   `toml:"path"`
	Timeout       Duration `toml:"timeout"`
	DefaultEngine string   `toml:"default_engine"`
	DefaultFormat string   `toml:"default_format"`
	Embedded      bool     `toml:"embedded"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	Namespace string   `toml:"namespace"`
}

// ServerConfig configures the HTTP render service.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Timeout:       Duration{engine.DefaultTimeout},
			DefaultEngine: string(engine.Dot),
			DefaultFormat: string(engine.SVG),
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			Dir:     DefaultCacheDir(),
			TTL:     Duration{7 * 24 * time.Hour},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Load reads the configuration from path, or from the default location when
// path is empty. Values missing from the file keep their defaults.
func Load(path string) (Config, string, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
		return cfg, "", nil
	case err != nil:
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, path, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, path, nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	cfg.Engine.Path = expandHome(cfg.Engine.Path)
	return cfg, cfg.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if _, err := engine.ParseEngine(c.Engine.DefaultEngine); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "engine.default_engine")
	}
	if _, err := engine.ParseFormat(c.Engine.DefaultFormat); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "engine.default_format")
	}
	if c.Engine.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "engine.timeout must not be negative")
	}
	backends := []string{cache.BackendFile, cache.BackendRedis, cache.BackendNone}
	if !slices.Contains(backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend %q, expected one of %s", c.Cache.Backend, strings.Join(backends, ", "))
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.Backend == cache.BackendFile && c.Cache.Dir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	return nil
}

// CacheOptions converts the cache section for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
		RedisDB:   c.Cache.RedisDB,
	}
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

// DefaultCacheDir returns the cache directory using the XDG standard
// (~/.cache/dotkit/).
func DefaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
