package matchcore

import "sync"

// Ledger is an append-only, mutex-protected record of executions. It is
// never read by the matching core itself — it exists purely so an
// external reporter (the CLI's print command, the bench harness's
// periodic summary) can observe trade activity without reaching into
// Book internals. Both of those read it on the goroutine driving the
// engine; the mutex makes reads from another goroutine safe as well.
// Wire it in with an Observer:
//
//	l := NewLedger()
//	eng := matchcore.New(matchcore.WithObserver(l))
type Ledger struct {
	mu         sync.Mutex
	executions []Execution
}

// NewLedger returns an empty ledger. It implements Observer; the
// Accepted/Rested/Cancelled/Rejected hooks are no-ops, only executions
// are recorded.
func NewLedger() *Ledger {
	return &Ledger{executions: make([]Execution, 0, 1024)}
}

var _ Observer = (*Ledger)(nil)

func (l *Ledger) OnAccepted(Order)         {}
func (l *Ledger) OnRested(Order)           {}
func (l *Ledger) OnCancelled(uint64)       {}
func (l *Ledger) OnRejected(Order, string) {}

func (l *Ledger) OnExecution(exec Execution) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.executions = append(l.executions, exec)
}

// All returns a copy of every execution recorded so far.
func (l *Ledger) All() []Execution {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Execution, len(l.executions))
	copy(out, l.executions)
	return out
}

// Count returns the number of executions recorded so far.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.executions)
}
