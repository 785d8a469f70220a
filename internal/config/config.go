// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Ledger  LedgerConfig  `toml:"ledger"`
	Cache   CacheConfig   `toml:"cache"`
	Engine  EngineConfig  `toml:"engine"`
	Spotify SpotifyConfig `toml:"spotify"`
	Log     LogConfig     `toml:"log"`
}

// LibraryConfig locates the music tree.
type LibraryConfig struct {
	Root string `toml:"root"`
}

// LedgerConfig locates the download ledger file.
type LedgerConfig struct {
	Path string `toml:"path"`
}

// CacheConfig locates the catalog response cache database.
type CacheConfig struct {
	Path string `toml:"path"`
}

// EngineConfig controls the fetch engine's transcode output.
type EngineConfig struct {
	AudioFormat  string `toml:"audio_format"`
	AudioQuality string `toml:"audio_quality"`
}

// SpotifyConfig carries the catalog API credentials. Both fields empty
// disables the Spotify adapter entirely.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// Configured reports whether both credentials are present.
func (s SpotifyConfig) Configured() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a configuration with all defaults applied, used when no
// config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses, and validates the configuration file. Unresolved
// environment variables and validation failures are aggregated into a
// single *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, skipping
// validation and missing-variable checks. Used by commands that inspect or
// repair a broken config.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Library.Root == "" {
		c.Library.Root = "./music"
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = "./.downloaded.json"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./data/catalog.db"
	}
	if c.Engine.AudioFormat == "" {
		c.Engine.AudioFormat = "mp3"
	}
	if c.Engine.AudioQuality == "" {
		c.Engine.AudioQuality = "192K"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default}, and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)((:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment variable references. Plain ${VAR}
// references to unset variables are left unchanged and reported in the
// returned missing list; :- supplies a default for unset-or-empty, :?
// records the given message for unset-or-empty.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[3], m[4]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})

	return result, missing
}
