package matchcore

// Observer is a synchronous extension seam the Engine calls on every
// accepted submission, each execution leg produced, and every successful
// cancel. The core stays persistence-free by default; callers that want
// to log, persist, or display activity can do so without reaching into
// book internals.
//
// Observer methods run on the caller's goroutine, inline with
// SubmitLimit/Cancel. A slow or blocking Observer slows down the engine;
// this is intentional given the single-threaded, synchronous model the
// rest of this package assumes.
type Observer interface {
	// OnAccepted fires once per SubmitLimit call, after an id has been
	// assigned but before matching runs.
	OnAccepted(order Order)
	// OnExecution fires once per execution leg emitted by the matcher.
	OnExecution(exec Execution)
	// OnRested fires when a (possibly partially filled) order ends up
	// resting on the book.
	OnRested(order Order)
	// OnCancelled fires only when Cancel actually removed a resting order.
	OnCancelled(id uint64)
	// OnRejected fires when Engine.Reject is called by an external
	// admission layer that validated an Input before ever calling
	// SubmitLimit. order carries no id: a rejected submission never
	// reaches id assignment.
	OnRejected(order Order, reason string)
}

// NopObserver discards every notification. It is the Engine's default.
var NopObserver Observer = nopObserver{}

type nopObserver struct{}

func (nopObserver) OnAccepted(Order)         {}
func (nopObserver) OnExecution(Execution)    {}
func (nopObserver) OnRested(Order)           {}
func (nopObserver) OnCancelled(uint64)       {}
func (nopObserver) OnRejected(Order, string) {}
