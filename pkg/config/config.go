// Package config loads the renderer configuration from a yaml file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn/renderer"
	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/scval"
)

// keyDelimiter separates nested config keys. Message ids contain dots, so viper's default
// delimiter cannot be used.
const keyDelimiter = "::"

var formats = []string{renderer.IDText, renderer.IDHTML, renderer.IDTable, renderer.IDYAML}

// RenderConfig configures how summaries are displayed.
type RenderConfig struct {
	Format       string            `mapstructure:"format" yaml:"format"`               // Output format: text, html, table or yaml
	MaxLength    int               `mapstructure:"max_length" yaml:"max_length"`       // Longest displayed parameter value, omission included
	Omission     string            `mapstructure:"omission" yaml:"omission"`           // Suffix of truncated values
	NumberFormat string            `mapstructure:"number_format" yaml:"number_format"` // float or exact
	Messages     map[string]string `mapstructure:"messages" yaml:"messages,omitempty"` // Headline templates by message id
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // zap level name
}

// Config wraps the entire configuration of the renderer.
type Config struct {
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Format:       renderer.IDText,
			MaxLength:    renderer.DefaultMaxLength,
			Omission:     renderer.DefaultOmission,
			NumberFormat: "float",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads the config from the file path, falling back to defaults and env vars if the file
// does not exist. Env vars that are set override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", filePath, err)
			}
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	def := Default()
	v.SetDefault(key("render", "format"), def.Render.Format)
	v.SetDefault(key("render", "max_length"), def.Render.MaxLength)
	v.SetDefault(key("render", "omission"), def.Render.Omission)
	v.SetDefault(key("render", "number_format"), def.Render.NumberFormat)
	v.SetDefault(key("log", "level"), def.Log.Level)

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(formats, c.Render.Format) {
		errs = append(errs, fmt.Errorf("render.format must be one of %v, got %q", formats, c.Render.Format))
	}
	if _, err := scval.ParseNumberFormat(c.Render.NumberFormat); err != nil {
		errs = append(errs, fmt.Errorf("render.number_format: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := renderer.NewTextRenderer(c.RenderOptions()); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}

	return errors.Join(errs...)
}

// RenderOptions returns the display options.
func (c *Config) RenderOptions() renderer.Options {
	return renderer.Options{
		MaxLength: c.Render.MaxLength,
		Omission:  c.Render.Omission,
		Messages:  c.Render.Messages,
	}
}

// ValueRenderer returns the ScVal renderer for the configured number format.
func (c *Config) ValueRenderer() (*scval.Renderer, error) {
	format, err := scval.ParseNumberFormat(c.Render.NumberFormat)
	if err != nil {
		return nil, err
	}

	return scval.NewRenderer(scval.RendererOptions{NumberFormat: format}), nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

func key(parts ...string) string {
	return strings.Join(parts, keyDelimiter)
}

// envBindings maps config keys to the environment variables that can provide their value.
var envBindings = map[string][]string{
	key("render", "format"):        {"HOSTFN_RENDER_FORMAT"},
	key("render", "max_length"):    {"HOSTFN_RENDER_MAX_LENGTH"},
	key("render", "omission"):      {"HOSTFN_RENDER_OMISSION"},
	key("render", "number_format"): {"HOSTFN_RENDER_NUMBER_FORMAT"},
	key("log", "level"):            {"HOSTFN_RENDER_LOG_LEVEL"},
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for k, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, k)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
