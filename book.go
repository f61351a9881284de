package matchcore

// Book holds the two-sided resting-order structure for one instrument:
// bids ordered price-descending/id-ascending, asks ordered
// price-ascending/id-ascending. Besides the operations the matcher and
// cancel need, it exports only depth counts, snapshots and a
// non-crossing check — the book has no notion of matching.
type Book struct {
	bids *sideBook
	asks *sideBook
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		bids: newSideBook(bidLess),
		asks: newSideBook(askLess),
	}
}

func (b *Book) side(s Side) *sideBook {
	if s.IsBid() {
		return b.bids
	}
	return b.asks
}

func (b *Book) opposite(s Side) *sideBook {
	if s.IsBid() {
		return b.asks
	}
	return b.bids
}

// BidDepth and AskDepth report resting order counts, used by tests and by
// the bench harness's final summary.
func (b *Book) BidDepth() int { return b.bids.Len() }
func (b *Book) AskDepth() int { return b.asks.Len() }

// Bids and Asks return a price-time ordered snapshot of resting orders,
// best first. Intended for display (CLI, diagnostics), not the hot path.
func (b *Book) Bids() []Order { return b.bids.orders() }
func (b *Book) Asks() []Order { return b.asks.orders() }

// Cancel removes the resting order with the given id from whichever side
// holds it. Reports whether an order was found and removed.
func (b *Book) Cancel(id uint64) bool {
	if _, ok := b.bids.remove(id); ok {
		return true
	}
	_, ok := b.asks.remove(id)
	return ok
}

// NonCrossing reports whether the book is free of a crossed market:
// best_bid.price < best_ask.price whenever both sides are non-empty.
func (b *Book) NonCrossing() bool {
	bid, hasBid := b.bids.top()
	ask, hasAsk := b.asks.top()
	if !hasBid || !hasAsk {
		return true
	}
	return bid.Price < ask.Price
}
