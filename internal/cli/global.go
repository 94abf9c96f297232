// Package cli implements the cosmo-calculators commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/internal/config"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigFile   string
	LogLevel     string
	OutputFormat string

	Config *config.Configuration
	Logger *zap.Logger
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile,
		fmt.Sprintf("path to configuration file (default %s when present)", constants.DefaultConfigFile))
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level override (debug, info, warn, error)")
	fs.StringVarP(&o.OutputFormat, "output-format", "o", o.OutputFormat,
		"type of output override: "+strings.Join(validation.OutputFormats(), ", "))
}

// Complete loads the configuration and builds the logger.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	path := o.ConfigFile
	if path == "" {
		if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
			path = constants.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to inspect %s: %w", constants.DefaultConfigFile, err)
		}
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %q: %w", path, err)
	}
	o.Config = conf

	logger, err := NewLogger(conf.Logging, o.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.Logger = logger

	// CLI override takes precedence over config
	if o.OutputFormat == "" {
		o.OutputFormat = conf.Output.Format
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return validation.ValidateOutputFormat(o.OutputFormat)
}

// Sync flushes the logger, if one was built.
func (o *GlobalOptions) Sync() {
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
}
