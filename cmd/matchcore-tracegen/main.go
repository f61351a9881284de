// Command matchcore-tracegen generates synthetic market traces in the
// binary format the trace package reads and writes. Activity
// random-walks around a mid price and stays weighted close to the touch.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nsardo/matchcore/trace"
)

type config struct {
	out         string
	count       int
	tickSize    uint64
	midPrice    uint64
	cancelRatio float64
	seed        int64
	instrument  string
}

func main() {
	cfg := config{}

	root := &cobra.Command{
		Use:   "matchcore-tracegen",
		Short: "generate a synthetic binary trace file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	root.Flags().StringVarP(&cfg.out, "out", "o", "trace.bin", "output trace file path")
	root.Flags().IntVarP(&cfg.count, "count", "n", 100000, "number of trace records to generate")
	root.Flags().Uint64Var(&cfg.tickSize, "tick-size", 100, "price increment, in fixed-point units")
	root.Flags().Uint64Var(&cfg.midPrice, "mid-price", 1000000, "starting mid price, in fixed-point units")
	root.Flags().Float64Var(&cfg.cancelRatio, "cancel-ratio", 0.2, "fraction of records that are cancels, once orders exist")
	root.Flags().Int64Var(&cfg.seed, "seed", 1, "random seed")
	root.Flags().StringVar(&cfg.instrument, "instrument", "AAPL", "instrument tag stamped on every limit record")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	runID := uuid.New()
	logger.Info("generating trace", zap.String("run_id", runID.String()), zap.Int("count", cfg.count))

	rng := rand.New(rand.NewSource(cfg.seed))
	instrTag := tag4(cfg.instrument)
	var traderTag [4]byte

	mid := cfg.midPrice
	var outstanding []uint64
	var nextID uint64 = 1

	records := make([]trace.Record, 0, cfg.count)
	for i := 0; i < cfg.count; i++ {
		if len(outstanding) > 0 && rng.Float64() < cfg.cancelRatio {
			idx := rng.Intn(len(outstanding))
			id := outstanding[idx]
			outstanding = append(outstanding[:idx], outstanding[idx+1:]...)
			records = append(records, trace.Record{
				Action:   trace.ActionCancel,
				CancelID: id,
			})
			continue
		}

		// random walk the mid price by a small number of ticks, weighted
		// toward staying close to the touch.
		step := rng.Intn(5) - 2
		mid = walk(mid, int64(step)*int64(cfg.tickSize), cfg.tickSize)

		side := int8(1)
		offsetTicks := int64(rng.Intn(4))
		if rng.Intn(2) == 0 {
			side = -1
		}
		price := walk(mid, side2dir(side)*offsetTicks*int64(cfg.tickSize), cfg.tickSize)

		qty := uint32(rng.Intn(200) + 1)

		traderTag = traderPool[rng.Intn(len(traderPool))]

		rec := trace.Record{
			Action:     trace.ActionLimit,
			OrderID:    nextID,
			Price:      price,
			Quantity:   qty,
			Side:       side,
			Instrument: instrTag,
			Trader:     traderTag,
		}
		records = append(records, rec)
		outstanding = append(outstanding, nextID)
		nextID++
	}

	if err := trace.WriteAll(w, records); err != nil {
		return err
	}

	logger.Info("trace written",
		zap.String("path", cfg.out),
		zap.Int("records", len(records)),
		zap.Int("record_size", trace.RecordSize),
	)
	return nil
}

func side2dir(side int8) int64 {
	if side == 1 {
		return -1 // bids random-walk below mid
	}
	return 1 // asks random-walk above mid
}

func walk(base uint64, deltaTicks int64, tickSize uint64) uint64 {
	v := int64(base) + deltaTicks
	minVal := int64(tickSize)
	if v < minVal {
		v = minVal
	}
	return uint64(v)
}

func tag4(s string) [4]byte {
	var t [4]byte
	copy(t[:], s)
	return t
}

// traderPool is a small, fixed set of participant tags, seeded from a
// uuid-derived prefix so repeated runs of the generator don't collide
// with tags used by a previous run sharing the same output file.
var traderPool = newTraderPool(8)

func newTraderPool(n int) [][4]byte {
	prefix := uuid.New()
	pool := make([][4]byte, n)
	for i := range pool {
		pool[i] = [4]byte{prefix[0], prefix[1], byte('A' + i/26), byte('A' + i%26)}
	}
	return pool
}
