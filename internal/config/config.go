// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the calculator CLI.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// CalculatorConfig tunes the interactive behaviour of the calculators.
type CalculatorConfig struct {
	// Debounce is the quiet period after the last keystroke before a
	// calculator recalculates.
	Debounce time.Duration `yaml:"debounce,omitempty"`
	// DefaultFrequency is the compounding frequency a cleared compound
	// interest calculator starts from.
	DefaultFrequency float64 `yaml:"defaultFrequency,omitempty"`
}

// DefaultFrequencyText renders the default frequency as field text.
func (c CalculatorConfig) DefaultFrequencyText() string {
	return strconv.FormatFloat(c.DefaultFrequency, 'f', -1, 64)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("calculator.debounce", constants.DefaultDebounceDelay)
	v.SetDefault("calculator.defaultFrequency", constants.DefaultCompoundingFrequency)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults, still subject to
// COSMO_* environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate rejects settings the calculators cannot run with.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("invalid output configuration: %w", err)
	}
	if err := validation.ValidateCalculatorSettings(c.Calculator.Debounce, c.Calculator.DefaultFrequency); err != nil {
		return fmt.Errorf("invalid calculator configuration: %w", err)
	}
	return nil
}
