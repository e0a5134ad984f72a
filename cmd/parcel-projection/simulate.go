package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/iwvelando/parcel-projection/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		projectKey  string
		scenarioKey string
		investment  string
		list        bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Apply a published scenario to an investment amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PROJECT\tNAME\tSCENARIOS")
				for _, p := range scenario.Projects() {
					fmt.Fprintf(tw, "%s\t%s\t%v\n", p.Key, p.Name, p.Scenarios)
				}
				return tw.Flush()
			}

			amount, err := decimal.NewFromString(investment)
			if err != nil {
				return fmt.Errorf("invalid investment %q: %w", investment, err)
			}
			sim, err := scenario.Simulate(projectKey, scenarioKey, amount)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Project:\t%s (%s)\n", sim.ProjectName, sim.Project)
			fmt.Fprintf(tw, "Scenario:\t%s\n", sim.Scenario)
			fmt.Fprintf(tw, "Investment:\t%s\n", sim.Investment.StringFixed(2))
			fmt.Fprintf(tw, "ROI:\t%s%%\n", sim.ROI.String())
			fmt.Fprintf(tw, "TIR:\t%s%%\n", sim.TIR.String())
			fmt.Fprintf(tw, "Annual return:\t%s\n", sim.AnnualReturn.StringFixed(2))
			fmt.Fprintf(tw, "Monthly return:\t%s\n", sim.MonthlyReturn.StringFixed(2))
			fmt.Fprintf(tw, "NPV:\t%s\n", sim.NetPresentValue.StringFixed(2))
			fmt.Fprintf(tw, "Net gain:\t%s\n", sim.NetGain.StringFixed(2))
			fmt.Fprintf(tw, "Payback:\t%d months\n", sim.PaybackMonths)
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&projectKey, "project", "", "project key (see --list)")
	f.StringVar(&scenarioKey, "scenario", "", "scenario key: conservative, moderate, optimistic")
	f.StringVar(&investment, "investment", "", "investment amount")
	f.BoolVar(&list, "list", false, "list the available projects and scenarios")
	cmd.MarkFlagsOneRequired("list", "investment")

	return cmd
}
