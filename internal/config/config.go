// Package config loads xlreport settings from file, environment and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/xlreport-go/internal/logging"
	"github.com/ukaji3/xlreport-go/pkg/xlreport"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/synth"
)

// EnvPrefix prefixes environment overrides, e.g. XLREPORT_GENERATOR_SEED.
const EnvPrefix = "XLREPORT"

// Config holds all application configuration
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// GeneratorConfig holds report generation configuration
type GeneratorConfig struct {
	Layout        string `mapstructure:"layout"`
	Seed          int64  `mapstructure:"seed"`
	YearsBack     int    `mapstructure:"years_back"`
	Concurrency   int    `mapstructure:"concurrency"`
	DefaultHeader bool   `mapstructure:"default_header"`
}

// flagKeys maps configuration keys to the CLI flags overriding them.
var flagKeys = map[string]string{
	"logger.level":          "log-level",
	"logger.format":         "log-format",
	"generator.layout":      "layout",
	"generator.seed":        "seed",
	"generator.years_back":  "years",
	"generator.concurrency": "concurrency",
}

// Load reads configuration from configPath (optional), XLREPORT_* environment
// variables and the flags in flags that were set on the command line.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "console")

	v.SetDefault("generator.layout", string(xlreport.LayoutAppend))
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.years_back", synth.DefaultYearsBack)
	v.SetDefault("generator.concurrency", 0)
	v.SetDefault("generator.default_header", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch xlreport.Layout(c.Generator.Layout) {
	case xlreport.LayoutAppend, xlreport.LayoutFresh:
	default:
		return fmt.Errorf("generator.layout must be append or fresh, got %q", c.Generator.Layout)
	}
	if c.Generator.YearsBack < 0 {
		return fmt.Errorf("generator.years_back must not be negative")
	}
	if c.Generator.Concurrency < 0 {
		return fmt.Errorf("generator.concurrency must not be negative")
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}
	return nil
}

// Options maps the generator settings onto xlreport.Options.
func (c *Config) Options() xlreport.Options {
	header := c.Generator.DefaultHeader
	return xlreport.Options{
		Layout:        xlreport.Layout(c.Generator.Layout),
		Seed:          c.Generator.Seed,
		YearsBack:     c.Generator.YearsBack,
		Concurrency:   c.Generator.Concurrency,
		DefaultHeader: &header,
	}
}

// LoggerSettings returns the logging configuration.
func (c *Config) LoggerSettings() logging.Config {
	return logging.Config{
		Level:      c.Logger.Level,
		OutputPath: c.Logger.OutputPath,
		Format:     c.Logger.Format,
	}
}
