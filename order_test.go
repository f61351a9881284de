package matchcore

import "testing"

func TestTagRoundTrip(t *testing.T) {
	tag := NewTag("AAPL")
	if got := tag.String(); got != "AAPL" {
		t.Fatalf("expected AAPL, got %q", got)
	}

	long := NewTag("TOOLONGTAG")
	if got := long.String(); got != "TOOL" {
		t.Fatalf("expected truncation to TOOL, got %q", got)
	}
}

func TestSideString(t *testing.T) {
	cases := map[Side]string{SideBid: "bid", SideAsk: "ask", SideInvalid: "invalid"}
	for side, want := range cases {
		if got := side.String(); got != want {
			t.Errorf("Side(%d).String() = %q, want %q", side, got, want)
		}
	}
}

func TestExecutionToOrder(t *testing.T) {
	exec := Execution{ID: 7, Price: 1000, Quantity: 5, Side: SideBid, Instrument: NewTag("AAPL"), Trader: NewTag("B1")}
	order := exec.ToOrder()
	want := Order{ID: 7, Price: 1000, Quantity: 5, Side: SideBid, Instrument: NewTag("AAPL"), Trader: NewTag("B1")}
	if order != want {
		t.Fatalf("ToOrder mismatch: got %+v, want %+v", order, want)
	}
}
