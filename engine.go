package matchcore

import "github.com/google/uuid"

// Input is what a caller submits: everything about an order except its
// id, which the engine assigns on acceptance.
type Input struct {
	Price      uint64
	Quantity   uint32
	Side       Side
	Instrument Tag
	Trader     Tag
}

// Engine owns identifier allocation and the book. SubmitLimit and Cancel
// are its two matching operations; Reject only notifies the Observer, and
// Book exposes the resting book. It runs single threaded and synchronous —
// callers needing concurrent access must serialize externally.
type Engine struct {
	RunID  uuid.UUID
	nextID uint64
	book   *Book
	obs    Observer
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithObserver attaches an Observer. The default is NopObserver.
func WithObserver(obs Observer) Option {
	return func(e *Engine) {
		if obs != nil {
			e.obs = obs
		}
	}
}

// New returns a fresh engine with an empty book and identifier allocation
// starting at 1.
func New(opts ...Option) *Engine {
	e := &Engine{
		RunID:  uuid.New(),
		nextID: 1,
		book:   NewBook(),
		obs:    NopObserver,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Book exposes the resting book, for diagnostics and tests. It is the
// live book, not a copy: calling Book.Cancel on it removes an order
// without notifying the Observer.
func (e *Engine) Book() *Book { return e.book }

// SubmitLimit assigns an id to order, matches it against the opposite
// side in price-time priority, and rests any residual on the same side.
// It is total: order.Quantity > 0 and a valid Side are caller
// obligations, not checked here — violating them is undefined behavior,
// not reported. assignedID is returned irrespective of whether the order
// fully executed, partially executed, or entirely rested.
func (e *Engine) SubmitLimit(in Input) (assignedID uint64, executions []Execution) {
	assignedID = e.nextID
	e.nextID++

	order := Order{
		ID:         assignedID,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Side:       in.Side,
		Instrument: in.Instrument,
		Trader:     in.Trader,
	}
	e.obs.OnAccepted(order)

	executions = match(e.book, &order)
	for _, ex := range executions {
		e.obs.OnExecution(ex)
	}
	if order.Quantity > 0 {
		e.obs.OnRested(order)
	}

	return assignedID, executions
}

// Reject notifies the configured Observer that in was refused before it
// ever reached SubmitLimit. It assigns no id — ids are assigned only on
// acceptance — and never touches the book; it exists so an external
// admission layer that validates input before calling SubmitLimit (the
// CLI rejects zero quantities and unparseable prices) has a uniform
// place to surface the refusal through the same Observer used for
// accepted activity, instead of reporting it out of band.
func (e *Engine) Reject(in Input, reason string) {
	e.obs.OnRejected(Order{
		Price:      in.Price,
		Quantity:   in.Quantity,
		Side:       in.Side,
		Instrument: in.Instrument,
		Trader:     in.Trader,
	}, reason)
}

// Cancel removes the resting order with the given id, if any. It never
// distinguishes never-existed, fully-filled, and already-cancelled ids.
func (e *Engine) Cancel(orderID uint64) bool {
	ok := e.book.Cancel(orderID)
	if ok {
		e.obs.OnCancelled(orderID)
	}
	return ok
}
