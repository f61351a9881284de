// Command matchcore-bench replays a binary trace file through a
// matchcore.Engine and reports throughput.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nsardo/matchcore"
	"github.com/nsardo/matchcore/trace"
)

func main() {
	var tracePath string
	var reportEvery int

	root := &cobra.Command{
		Use:   "matchcore-bench",
		Short: "replay a benchmark trace file through a matchcore Engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(tracePath, reportEvery)
		},
	}
	root.Flags().StringVarP(&tracePath, "trace", "t", "", "path to a binary trace file")
	root.Flags().IntVarP(&reportEvery, "report-every", "r", 0, "log a progress line every N records (0 = only at the end)")
	_ = root.MarkFlagRequired("trace")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(tracePath string, reportEvery int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()

	records, err := trace.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading trace: %w", err)
	}

	ledger := matchcore.NewLedger()
	eng := matchcore.New(matchcore.WithObserver(ledger))
	logger.Info("loaded trace",
		zap.String("run_id", eng.RunID.String()),
		zap.Int("records", len(records)),
	)

	var cancelHits, cancelMisses int
	start := time.Now()
	for i, rec := range records {
		switch rec.Action {
		case trace.ActionLimit:
			eng.SubmitLimit(rec.Input())
		case trace.ActionCancel:
			if eng.Cancel(rec.CancelID) {
				cancelHits++
			} else {
				cancelMisses++
			}
		default:
			logger.Warn("unknown action byte", zap.Uint8("action", uint8(rec.Action)), zap.Int("index", i))
		}

		if reportEvery > 0 && (i+1)%reportEvery == 0 {
			logger.Info("progress",
				zap.Int("processed", i+1),
				zap.Int("ledger_executions", ledger.Count()),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	}
	elapsed := time.Since(start)

	var recordsPerSec float64
	if elapsed > 0 {
		recordsPerSec = float64(len(records)) / elapsed.Seconds()
	}

	logger.Info("done",
		zap.Int("records", len(records)),
		zap.Int("matches", ledger.Count()/2),
		zap.Int("cancel_hits", cancelHits),
		zap.Int("cancel_misses", cancelMisses),
		zap.Duration("elapsed", elapsed),
		zap.Float64("records_per_sec", recordsPerSec),
		zap.Int("resting_bids", eng.Book().BidDepth()),
		zap.Int("resting_asks", eng.Book().AskDepth()),
	)
	return nil
}
