package main

import (
	"fmt"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/output"
	"github.com/iwvelando/parcel-projection/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	var in projection.Input

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute a single financial projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.loadConfiguration(cmd)
			if err != nil {
				return err
			}

			logger, err := initializeLogger(conf.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config
			outputFormat := conf.Output.Format
			if opts.outputFormat != "" {
				outputFormat = opts.outputFormat
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			calc, err := opts.newCalculator(conf, logger)
			if err != nil {
				return err
			}

			result, err := calc.Calculate(in, "")
			if err != nil {
				return err
			}
			sched, err := calc.Schedule(in)
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				logger.Warn(warning.Message,
					zap.String("op", "main.project"),
					zap.String("code", warning.Code),
				)
			}

			switch outputFormat {
			case constants.OutputFormatCSV:
				return output.CsvFormat(cmd.OutOrStdout(), sched)
			default:
				return output.PrettyFormat(cmd.OutOrStdout(), result, sched)
			}
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.ParcelCount, "parcels", 0, "number of parcels (terrenos)")
	f.Float64Var(&in.UFValue, "uf", 0, "monthly rent per square meter in UF")
	f.IntVar(&in.ParcelArea, "area", 0, "area of each parcel in square meters (superficie)")
	f.Float64Var(&in.DiscountRateAnnualPercent, "rate", 0, "annual discount rate in percent (vanRate)")
	f.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv")
	_ = cmd.MarkFlagRequired("parcels")
	_ = cmd.MarkFlagRequired("uf")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}
