package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trading_backend/internal/app/di"
	"trading_backend/internal/config"
	"trading_backend/internal/feature/analysis/domain/entity"
	"trading_backend/internal/feature/analysis/usecase"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		timeframe string
		strategy  string
		count     int
		baseURLs  []string
		retries   int
		timeout   time.Duration
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <pair>",
		Short: "Request a strategy analysis for one pair",
		Example: `  tradectl analyze EUR/USD --timeframe 1H --strategy "Breakout Strategy"
  tradectl analyze "NIFTY 50" -t 15M --base-url http://localhost:9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			ac := cfg.Analysis
			if len(baseURLs) > 0 {
				ac.BaseURLs = baseURLs
			}
			if cmd.Flags().Changed("retries") {
				ac.MaxRetries = retries
			}
			if cmd.Flags().Changed("timeout") {
				ac.Timeout = timeout
			}

			uc := usecase.NewAnalysisUsecase(di.NewAnalysisClient(ac))
			res, err := uc.FetchAnalysis(ctx, args[0], timeframe, strategy, count)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Response)
			}
			printResult(cmd, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&timeframe, "timeframe", "t", "1H", "display timeframe")
	f.StringVarP(&strategy, "strategy", "s", "Breakout Strategy", "strategy display name or code")
	f.IntVarP(&count, "count", "n", usecase.DefaultCount, "number of candles")
	f.StringSliceVar(&baseURLs, "base-url", nil, "analysis service base URL (repeatable, overrides ANALYSIS_BASE_URLS)")
	f.IntVar(&retries, "retries", 3, "attempts per base URL")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "per-attempt timeout")
	f.BoolVar(&asJSON, "json", false, "print the raw service response")
	return cmd
}

func printResult(cmd *cobra.Command, res *entity.Result) {
	out := cmd.OutOrStdout()
	a := res.Response.Analysis

	fmt.Fprintf(out, "%s %s (%s, %d candles)\n", res.Response.Pair, res.Response.Granularity, res.Request.Strategy, len(res.Response.Candles))
	if res.GranularityAdjusted() {
		fmt.Fprintf(out, "note: %s is daily-only, %s was sent instead of %s\n", res.Request.Instrument, res.Request.Granularity, res.RequestedGranularity)
	}
	fmt.Fprintf(out, "signal:      %s (confidence %.0f%%)\n", a.Signal, a.Confidence*100)
	fmt.Fprintf(out, "entry:       %g\n", a.Entry)
	fmt.Fprintf(out, "stop loss:   %g\n", a.StopLoss)
	fmt.Fprintf(out, "take profit: %g\n", a.TakeProfit)
	if a.RiskRewardRatio != "" {
		fmt.Fprintf(out, "risk/reward: %s\n", a.RiskRewardRatio)
	}
	if a.Recommendation != "" {
		fmt.Fprintf(out, "\n%s\n", a.Recommendation)
	}
}
