package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/parcel-projection/internal/config"
	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath       string
	serverConfigPath string
	logLevel         string
	outputFormat     string
	irrMode          string
}

// newRootCmd builds the command tree. Rendered output goes to stdout; logs
// go to stderr or the configured log file.
func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "parcel-projection",
		Short: "Investor projections for industrial parcel developments",
		Long: `parcel-projection computes the monthly income split, NPV, IRR and payback
of a parcel development, runs the published scenario simulator and serves
both over a JSON API.

Examples:
  parcel-projection project --parcels 100 --uf 0.01 --area 10000 --rate 15
  parcel-projection project --parcels 250 --uf 0.012 --area 8000 --rate 12 --irr-mode solved
  parcel-projection simulate --project land-parcels --scenario moderate --investment 50000000
  parcel-projection serve --server-config server-config.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&opts.irrMode, "irr-mode", "", "IRR mode override (legacy, solved)")

	root.AddCommand(
		newProjectCmd(opts),
		newSimulateCmd(),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfiguration reads the configuration file. The default path may be
// absent, in which case built-in defaults apply; an explicit path must exist.
func (o *rootOptions) loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	if _, err := os.Stat(o.configPath); err != nil {
		explicit := cmd.Flag("config") != nil && cmd.Flag("config").Changed
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load configuration at %s: %w", o.configPath, err)
	}

	conf, err := config.LoadConfiguration(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", o.configPath, err)
	}
	return conf, nil
}

// newCalculator builds the calculator from the configuration, honoring the
// --irr-mode override, and logs any configuration warnings.
func (o *rootOptions) newCalculator(conf *config.Configuration, logger *zap.Logger) (*projection.Calculator, error) {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	params, err := conf.ProjectionParams()
	if err != nil {
		return nil, fmt.Errorf("invalid projection configuration: %w", err)
	}

	mode, err := projection.ParseIRRMode(o.irrMode)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		params.DefaultIRRMode = mode
	}

	return projection.NewCalculator(logger, params)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "parcel-projection version %s\n", version)
			return err
		},
	}
}
