package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/parcel-projection/internal/server"
	"github.com/iwvelando/parcel-projection/internal/store"
	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		address     string
		maxBodySize string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg, err := server.LoadConfig(opts.serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverCfg.Address = address
			}
			if maxBodySize != "" {
				size, err := server.ParseSize(maxBodySize)
				if err != nil {
					return err
				}
				serverCfg.SetBodySizeBytes(size)
			}

			conf, err := opts.loadConfiguration(cmd)
			if err != nil {
				return err
			}

			// Server logging settings win over the application's
			loggingCfg := conf.Logging
			if serverCfg.Logging.Level != "" {
				loggingCfg.Level = serverCfg.Logging.Level
			}
			if serverCfg.Logging.Format != "" {
				loggingCfg.Format = serverCfg.Logging.Format
			}
			if serverCfg.Logging.OutputFile != "" {
				loggingCfg.OutputFile = serverCfg.Logging.OutputFile
			}

			logger, err := initializeLogger(loggingCfg, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			calc, err := opts.newCalculator(conf, logger)
			if err != nil {
				return err
			}

			st, err := store.NewMemoryStore(logger, conf.SeedStations())
			if err != nil {
				return err
			}

			handler, err := server.NewHandler(logger, server.Options{
				Calculator:  calc,
				Store:       st,
				MaxBodySize: serverCfg.BodySizeBytes(),
				Version:     version,
			})
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", serverCfg.Address)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", serverCfg.Address, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting parcel-projection server",
				zap.String("op", "main.serve"),
				zap.String("version", version),
				zap.Int64("maxBodySize", serverCfg.BodySizeBytes()),
			)
			return server.Serve(ctx, ln, logger, handler, serverCfg.ShutdownTimeoutDuration())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	f.StringVar(&address, "address", "", "listen address override")
	f.StringVar(&maxBodySize, "max-body-size", "", "request body limit override (e.g. 64K, 1M)")

	return cmd
}
