// Command matchcore-cli is an interactive REPL over a single matchcore
// Engine, restricted to plain limit orders on one instrument per session
// (no market, stop, or time-in-force orders).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nsardo/matchcore"
)

func main() {
	var instrument string

	root := &cobra.Command{
		Use:   "matchcore-cli",
		Short: "interactive REPL for a single-instrument limit order book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl(instrument)
		},
	}
	root.Flags().StringVarP(&instrument, "instrument", "i", "AAPL", "instrument tag for all orders entered in this session")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// priceFmt renders a uint64 fixed-point (4 implied decimals) price as a
// decimal string. Display only — the engine never uses apd internally.
func priceFmt(price uint64) string {
	return apd.New(int64(price), -4).String()
}

func repl(instrument string) error {
	ledger := matchcore.NewLedger()
	eng := matchcore.New(matchcore.WithObserver(ledger))
	instr := matchcore.NewTag(instrument)

	fmt.Printf("matchcore-cli session %s, instrument %s\n", eng.RunID, instrument)
	fmt.Println("commands: buy <qty> <price> <trader> | sell <qty> <price> <trader> | cancel <id> | print | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "print":
			printBook(eng)
			printLedger(ledger)
		case "buy", "sell":
			if len(fields) != 4 {
				fmt.Println("usage: buy|sell <qty> <price> <trader>")
				continue
			}
			side := matchcore.SideBid
			if fields[0] == "sell" {
				side = matchcore.SideAsk
			}
			submitOrder(eng, instr, side, fields[1], fields[2], fields[3])
		case "cancel":
			if len(fields) != 2 {
				fmt.Println("usage: cancel <id>")
				continue
			}
			id, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Println("invalid id:", err)
				continue
			}
			fmt.Println(eng.Cancel(id))
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func submitOrder(eng *matchcore.Engine, instr matchcore.Tag, side matchcore.Side, qtyStr, priceStr, trader string) {
	traderTag := matchcore.NewTag(trader)

	qty, err := strconv.ParseUint(qtyStr, 10, 32)
	if err != nil {
		reject(eng, 0, 0, side, instr, traderTag, "invalid qty: "+err.Error())
		return
	}
	if qty == 0 {
		reject(eng, 0, uint32(qty), side, instr, traderTag, "zero quantity")
		return
	}
	dec, _, err := apd.NewFromString(priceStr)
	if err != nil {
		reject(eng, 0, uint32(qty), side, instr, traderTag, "invalid price: "+err.Error())
		return
	}
	priceFixed, err := dec.Int64()
	if err != nil {
		// fall back to scaling a float-looking decimal into 4 implied decimals
		scaled := new(apd.Decimal)
		_, _ = apd.BaseContext.Mul(scaled, dec, apd.New(10000, 0))
		priceFixed, err = scaled.Int64()
		if err != nil {
			reject(eng, 0, uint32(qty), side, instr, traderTag, "invalid price: "+err.Error())
			return
		}
	}

	id, execs := eng.SubmitLimit(matchcore.Input{
		Price:      uint64(priceFixed),
		Quantity:   uint32(qty),
		Side:       side,
		Instrument: instr,
		Trader:     traderTag,
	})
	fmt.Printf("accepted id=%d, %d execution leg(s)\n", id, len(execs))
}

// reject routes a submission that failed CLI-side validation through the
// engine's Observer, via Engine.Reject, and prints the reason. The Ledger
// this CLI wires in records executions only, so the refusal does not
// appear in the print command's tables.
func reject(eng *matchcore.Engine, price uint64, qty uint32, side matchcore.Side, instr, trader matchcore.Tag, reason string) {
	eng.Reject(matchcore.Input{
		Price:      price,
		Quantity:   qty,
		Side:       side,
		Instrument: instr,
		Trader:     trader,
	}, reason)
	fmt.Println("rejected:", reason)
}

func printBook(eng *matchcore.Engine) {
	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"side", "id", "price", "qty", "trader"})
	for _, o := range eng.Book().Bids() {
		writer.Append([]string{"bid", fmt.Sprint(o.ID), priceFmt(o.Price), fmt.Sprint(o.Quantity), o.Trader.String()})
	}
	for _, o := range eng.Book().Asks() {
		writer.Append([]string{"ask", fmt.Sprint(o.ID), priceFmt(o.Price), fmt.Sprint(o.Quantity), o.Trader.String()})
	}
	writer.SetCaption(true, "book")
	writer.Render()
}

func printLedger(ledger *matchcore.Ledger) {
	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"id", "price", "qty", "side", "trader"})
	for _, ex := range ledger.All() {
		writer.Append([]string{fmt.Sprint(ex.ID), priceFmt(ex.Price), fmt.Sprint(ex.Quantity), ex.Side.String(), ex.Trader.String()})
	}
	writer.SetCaption(true, "executions")
	writer.Render()
}
