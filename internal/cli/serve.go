package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cosmoinvest/cosmo-calculators/internal/config"
	"github.com/cosmoinvest/cosmo-calculators/internal/server"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type ServeOptions struct {
	GlobalOptions

	ServerConfigFile string
	Address          string
	MaxBodySize      string

	serverConfig *server.Config
}

func DefaultServeOptions() *ServeOptions {
	return &ServeOptions{
		GlobalOptions:    DefaultGlobalOptions(),
		ServerConfigFile: constants.DefaultServerConfigFile,
	}
}

func NewCmdServe() *cobra.Command {
	o := DefaultServeOptions()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator API and web page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			defer o.Sync()
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ServeOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.ServerConfigFile, "server-config", o.ServerConfigFile, "path to server configuration file")
	fs.StringVar(&o.Address, "address", o.Address, "listen address override (e.g. :8080)")
	fs.StringVar(&o.MaxBodySize, "max-body-size", o.MaxBodySize, "request body limit override (e.g. 64K)")
}

// Complete loads the server configuration. Its logging section, when set,
// replaces the CLI logging configuration.
func (o *ServeOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	cfg, err := server.LoadConfig(o.ServerConfigFile)
	if err != nil {
		return err
	}
	if o.Address != "" {
		cfg.Address = o.Address
	}
	if o.MaxBodySize != "" {
		size, err := server.ParseSize(o.MaxBodySize)
		if err != nil {
			return err
		}
		cfg.SetBodySizeBytes(size)
	}
	o.serverConfig = cfg

	if cfg.Logging != (config.LoggingConfig{}) {
		logger, err := NewLogger(cfg.Logging, o.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize server logger: %w", err)
		}
		o.Sync()
		o.Logger = logger
	}
	return nil
}

// Run serves until ctx is done, then drains in-flight requests.
func (o *ServeOptions) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", o.serverConfig.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", o.serverConfig.Address, err)
	}
	return o.serve(ctx, listener)
}

func (o *ServeOptions) serve(ctx context.Context, listener net.Listener) error {
	handler := server.NewHandler(o.Logger, o.serverConfig, Version)
	defer handler.Close()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		o.Logger.Info(fmt.Sprintf("listening on %s", listener.Addr()),
			zap.String("op", "cli.ServeOptions.Run"),
		)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		o.Logger.Info("shutting down server",
			zap.String("op", "cli.ServeOptions.Run"),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	o.Logger.Info("server exited",
		zap.String("op", "cli.ServeOptions.Run"),
	)
	return nil
}
