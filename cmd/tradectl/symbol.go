package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trading_backend/internal/feature/symbols/usecase"
	"trading_backend/internal/shared/instrument"
)

func newSymbolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbol",
		Short: "Inspect symbol normalization",
	}

	var timeframe string
	resolve := &cobra.Command{
		Use:   "resolve <label>...",
		Short: "Show chart and analysis symbols for display labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewSymbolsUsecase()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tCHART SYMBOL\tINTERVAL\tLIMITED\tAPI INSTRUMENT")
			for _, label := range args {
				c := uc.ResolveChart(label, timeframe)
				interval := c.Interval
				if c.IntervalAdjusted {
					interval = c.RequestedInterval + "->" + c.Interval
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", c.Label, c.ProviderSymbol, interval, c.LimitedTimeframes, c.APIInstrument)
			}
			return w.Flush()
		},
	}
	resolve.Flags().StringVarP(&timeframe, "timeframe", "t", "1H", "display timeframe (1M, 5M, 15M, 30M, 1H, 4H, 1D, 1W, 1MN)")

	list := &cobra.Command{
		Use:   "list [category]",
		Short: "List the pair picker labels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var category string
			if len(args) == 1 {
				category = args[0]
			}
			groups, err := usecase.NewSymbolsUsecase().ListPairs(category)
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g.Category, strings.Join(g.Pairs, ", "))
			}
			return nil
		},
	}

	instrumentCmd := &cobra.Command{
		Use:   "instrument <label>",
		Short: "Show the analysis instrument code for a label",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), instrument.NormalizeForAPI(args[0]))
		},
	}

	cmd.AddCommand(resolve, list, instrumentCmd)
	return cmd
}
