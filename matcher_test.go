package matchcore

import "testing"

var aapl = NewTag("AAPL")

func limit(eng *Engine, price uint64, qty uint32, side Side, trader string) (uint64, []Execution) {
	return eng.SubmitLimit(Input{Price: price, Quantity: qty, Side: side, Instrument: aapl, Trader: NewTag(trader)})
}

func leg(id uint64, price uint64, qty uint32, side Side, trader string) Execution {
	return Execution{ID: id, Price: price, Quantity: qty, Side: side, Instrument: aapl, Trader: NewTag(trader)}
}

func assertExecs(t *testing.T, got, want []Execution) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d executions, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("execution %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

// Full fill on rest.
func TestScenarioFullFillOnRest(t *testing.T) {
	eng := New()

	id1, execs := limit(eng, 990000, 100, SideBid, "B1")
	if id1 != 1 || len(execs) != 0 {
		t.Fatalf("unexpected id=%d execs=%v", id1, execs)
	}

	id2, execs := limit(eng, 1000000, 200, SideAsk, "A1")
	if id2 != 2 || len(execs) != 0 {
		t.Fatalf("unexpected id=%d execs=%v", id2, execs)
	}

	id3, execs := limit(eng, 980000, 100, SideAsk, "A1")
	if id3 != 3 {
		t.Fatalf("expected id 3, got %d", id3)
	}
	assertExecs(t, execs, []Execution{
		leg(1, 990000, 100, SideBid, "B1"),
		leg(3, 990000, 100, SideAsk, "A1"),
	})
}

// Cross through multiple levels.
func TestScenarioCrossMultipleLevels(t *testing.T) {
	eng := New()
	limit(eng, 990000, 100, SideBid, "B1") // id1
	limit(eng, 1000000, 200, SideAsk, "A1") // id2
	limit(eng, 980000, 100, SideAsk, "A1") // id3, fills id1

	id4, execs := limit(eng, 1000000, 100, SideBid, "B2")
	if id4 != 4 {
		t.Fatalf("expected id 4, got %d", id4)
	}
	assertExecs(t, execs, []Execution{
		leg(2, 1000000, 100, SideAsk, "A1"),
		leg(4, 1000000, 100, SideBid, "B2"),
	})

	id5, execs := limit(eng, 995000, 150, SideAsk, "A2")
	if id5 != 5 || len(execs) != 0 {
		t.Fatalf("expected id5 to rest, got id=%d execs=%v", id5, execs)
	}

	id6, execs := limit(eng, 1005000, 200, SideBid, "B1")
	if id6 != 6 {
		t.Fatalf("expected id 6, got %d", id6)
	}
	assertExecs(t, execs, []Execution{
		leg(5, 995000, 150, SideAsk, "A2"),
		leg(6, 995000, 150, SideBid, "B1"),
		leg(2, 1000000, 50, SideAsk, "A1"),
		leg(6, 1000000, 50, SideBid, "B1"),
	})
}

// Cancel before cross.
func TestScenarioCancelBeforeCross(t *testing.T) {
	eng := New()
	id1, _ := limit(eng, 990000, 100, SideBid, "B1")
	limit(eng, 1000000, 200, SideAsk, "A1") // id2

	if !eng.Cancel(id1) {
		t.Fatalf("expected first cancel of id1 to succeed")
	}
	if eng.Cancel(id1) {
		t.Fatalf("expected second cancel of id1 to fail")
	}

	id3, execs := limit(eng, 1010000, 100, SideBid, "B1")
	assertExecs(t, execs, []Execution{
		leg(2, 1000000, 100, SideAsk, "A1"),
		leg(id3, 1000000, 100, SideBid, "B1"),
	})

	if eng.Cancel(id3) {
		t.Fatalf("expected cancel of fully filled id3 to fail")
	}
	if !eng.Cancel(2) {
		t.Fatalf("expected cancel of partially filled id2 to succeed")
	}
}

// FIFO across the same price.
func TestScenarioFIFOSamePrice(t *testing.T) {
	eng := New()
	limit(eng, 990000, 100, SideBid, "B1") // id1
	id4, _ := limit(eng, 990000, 50, SideBid, "B2")
	id5, _ := limit(eng, 990000, 75, SideBid, "B1")

	id6, execs := limit(eng, 990000, 120, SideAsk, "A1")
	assertExecs(t, execs, []Execution{
		leg(1, 990000, 100, SideBid, "B1"),
		leg(id6, 990000, 100, SideAsk, "A1"),
		leg(id4, 990000, 20, SideBid, "B2"),
		leg(id6, 990000, 20, SideAsk, "A1"),
	})
	_ = id5
}

// Cancel middle of queue.
func TestScenarioCancelMiddleOfQueue(t *testing.T) {
	eng := New()
	limit(eng, 990000, 100, SideBid, "B1") // id1
	id4, _ := limit(eng, 990000, 50, SideBid, "B2")
	id5, _ := limit(eng, 990000, 75, SideBid, "B1")

	limit(eng, 990000, 120, SideAsk, "A1") // id6, consumes id1 fully then 20 off id4

	if !eng.Cancel(id4) {
		t.Fatalf("expected cancel of id4 to succeed")
	}

	id7, execs := limit(eng, 990000, 10, SideAsk, "A2")
	assertExecs(t, execs, []Execution{
		leg(id5, 990000, 10, SideBid, "B1"),
		leg(id7, 990000, 10, SideAsk, "A2"),
	})
}

// Aggressive order clears multiple levels and leaves a residual.
func TestScenarioAggressiveClearsLevels(t *testing.T) {
	eng := New()
	id9, _ := limit(eng, 980000, 50, SideBid, "B2")
	id5, _ := limit(eng, 990000, 75, SideBid, "B1")
	id10, _ := limit(eng, 1010000, 150, SideAsk, "A2")

	id11, execs := limit(eng, 1020000, 200, SideBid, "B1")
	assertExecs(t, execs, []Execution{
		leg(id10, 1010000, 150, SideAsk, "A2"),
		leg(id11, 1010000, 150, SideBid, "B1"),
	})

	if eng.Book().BidDepth() != 3 { // id9, id5, residual of id11
		t.Fatalf("expected 3 resting bids, got %d", eng.Book().BidDepth())
	}
	_, _ = id9, id5
}
