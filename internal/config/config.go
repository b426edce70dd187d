package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingToken = errors.New("missing bot token: pass --token or set DISCORD_TOKEN")
	ErrMissingGuild = errors.New("missing guild id: pass --guild-id or set GUILD_ID")
	ErrInvalidGuild = errors.New("guild id must be a number")
)

// EnvFile is loaded into the environment, without overriding it, before
// the configuration is resolved.
var EnvFile = ".env"

type Config struct {
	Token        string   `yaml:"token" mapstructure:"token"`
	GuildID      string   `yaml:"guild_id" mapstructure:"guild_id"`
	Editor       string   `yaml:"editor" mapstructure:"editor"`
	Workers      int      `yaml:"workers" mapstructure:"workers"`
	Timeout      string   `yaml:"timeout" mapstructure:"timeout"`
	Debug        bool     `yaml:"debug" mapstructure:"debug"`
	DefaultTypes []string `yaml:"default_types" mapstructure:"default_types"`

	// Sources maps each key to the layer its value came from. Only set by
	// LoadMerged.
	Sources map[string]string `yaml:"-" mapstructure:"-"`
}

// envNames lists the variables bound to each key, in lookup order.
var envNames = map[string][]string{
	"token":    {"DISCORD_TOKEN"},
	"guild_id": {"GUILD_ID", "DISCORD_GUILD_ID"},
	"editor":   {"CHANEDIT_EDITOR"},
	"workers":  {"CHANEDIT_WORKERS"},
	"timeout":  {"CHANEDIT_TIMEOUT"},
}

var keys = []string{"token", "guild_id", "editor", "workers", "timeout", "debug", "default_types"}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	Token        string
	GuildID      string
	Editor       string
	Workers      int
	Timeout      time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Token:        "",
		GuildID:      "",
		Editor:       "",
		Workers:      4,
		Timeout:      "30s",
		Debug:        false,
		DefaultTypes: []string{},
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// LoadMerged resolves the configuration from, lowest first: defaults, the
// active profile, the environment (and .env), then CLI options. The second
// return value describes where the profile came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if err := loadEnvFile(); err != nil {
		return nil, "", err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	used := "(ignored config)"
	if !opts.IgnoreConfig {
		activePath, err := ActiveConfigPath()
		switch {
		case errors.Is(err, ErrNoConfig):
			used = "(no profile, environment and flags only)"
		case err != nil:
			return nil, "", err
		default:
			v.SetConfigFile(activePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
			}
			used = activePath
		}
	}

	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}

	mergeConfig(&cfg, opts)
	normalizeDefaults(&cfg)
	cfg.Sources = sources(v, opts)

	return &cfg, used, nil
}

func loadEnvFile() error {
	if EnvFile == "" {
		return nil
	}
	if _, err := os.Stat(EnvFile); err != nil {
		return nil
	}
	if err := godotenv.Load(EnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("token", def.Token)
	v.SetDefault("guild_id", def.GuildID)
	v.SetDefault("editor", def.Editor)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("default_types", def.DefaultTypes)
}

func bindEnv(v *viper.Viper) {
	for key, names := range envNames {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}
}

func sources(v *viper.Viper, o Options) map[string]string {
	fromFlag := map[string]bool{
		"token":    o.Token != "",
		"guild_id": o.GuildID != "",
		"editor":   o.Editor != "",
		"workers":  o.Workers != 0,
		"timeout":  o.Timeout != 0,
		"debug":    o.Debug,
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = sourceOf(v, key, fromFlag[key])
	}
	return out
}

func sourceOf(v *viper.Viper, key string, fromFlag bool) string {
	if fromFlag {
		return "flag"
	}
	for _, name := range envNames[key] {
		if os.Getenv(name) != "" {
			return "env " + name
		}
	}
	if v.InConfig(key) {
		return "profile"
	}
	return "default"
}

func mergeConfig(c *Config, o Options) {
	if o.Token != "" {
		c.Token = o.Token
	}
	if o.GuildID != "" {
		c.GuildID = o.GuildID
	}
	if o.Editor != "" {
		c.Editor = o.Editor
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout.String()
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	c.Token = strings.TrimSpace(c.Token)
	c.GuildID = strings.TrimSpace(c.GuildID)
	if c.Workers < 1 {
		c.Workers = 4
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

// Validate reports every missing or malformed connection setting.
func (c *Config) Validate() error {
	var errs error
	if c.Token == "" {
		errs = multierr.Append(errs, ErrMissingToken)
	}
	switch {
	case c.GuildID == "":
		errs = multierr.Append(errs, ErrMissingGuild)
	default:
		if _, err := strconv.ParseUint(c.GuildID, 10, 64); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalidGuild, c.GuildID))
		}
	}
	if _, err := c.RequestTimeout(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func (c *Config) RequestTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

func (c *Config) Print() {
	c.Fprint(os.Stdout)
}

// Fprint lists the settings, token redacted, each followed by the layer
// it came from when known.
func (c *Config) Fprint(w io.Writer) {
	line := func(key string, value any) {
		if src, ok := c.Sources[key]; ok {
			fmt.Fprintf(w, " -%s: %v  (%s)\n", key, value, src)
			return
		}
		fmt.Fprintf(w, " -%s: %v\n", key, value)
	}

	line("token", redact(c.Token))
	if c.GuildID != "" {
		line("guild_id", c.GuildID)
	}
	if c.Editor != "" {
		line("editor", c.Editor)
	}
	line("workers", c.Workers)
	line("timeout", c.Timeout)
	if c.Debug {
		line("debug", c.Debug)
	}
	if len(c.DefaultTypes) > 0 {
		line("default_types", strings.Join(c.DefaultTypes, ", "))
	}
}

func redact(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 8:
		return "********"
	default:
		return token[:4] + "…" + token[len(token)-4:]
	}
}
