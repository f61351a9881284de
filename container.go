package matchcore

import (
	"github.com/igrmk/treemap/v2"
)

// priceTimeKey orders resting entries on one side of the book. id is
// monotonically assigned, so id-ascending is equivalent to arrival-time
// ascending within a price level.
type priceTimeKey struct {
	price uint64
	id    uint64
}

// bidLess sorts bids price descending, id ascending: best (highest) bid
// first, ties broken by earliest arrival.
func bidLess(a, b priceTimeKey) bool {
	if a.price != b.price {
		return a.price > b.price
	}
	return a.id < b.id
}

// askLess sorts asks price ascending, id ascending: best (lowest) ask
// first, ties broken by earliest arrival.
func askLess(a, b priceTimeKey) bool {
	if a.price != b.price {
		return a.price < b.price
	}
	return a.id < b.id
}

// sideBook is one side of the book (all bids, or all asks): a price-time
// ordered tree of resting orders plus an id index for O(log n) cancel.
// Tree traversal order substitutes for an explicit price->FIFO-queue map,
// and the id index substitutes for an auxiliary position-handle map.
type sideBook struct {
	tree *treemap.TreeMap[priceTimeKey, *Order]
	byID map[uint64]priceTimeKey
}

func newSideBook(less func(a, b priceTimeKey) bool) *sideBook {
	return &sideBook{
		tree: treemap.NewWithKeyCompare[priceTimeKey, *Order](less),
		byID: make(map[uint64]priceTimeKey),
	}
}

func (s *sideBook) Len() int { return s.tree.Len() }

// top returns the best resting order on this side, without removing it.
func (s *sideBook) top() (*Order, bool) {
	it := s.tree.Iterator()
	if !it.Valid() {
		return nil, false
	}
	return it.Value(), true
}

// pop removes the best resting order on this side.
func (s *sideBook) pop() {
	it := s.tree.Iterator()
	if !it.Valid() {
		return
	}
	key := it.Key()
	delete(s.byID, key.id)
	s.tree.Del(key)
}

// insert adds a resting order at its unique price-time position.
func (s *sideBook) insert(o *Order) {
	key := priceTimeKey{price: o.Price, id: o.ID}
	s.tree.Set(key, o)
	s.byID[o.ID] = key
}

// remove deletes the order with the given id, if present on this side.
func (s *sideBook) remove(id uint64) (*Order, bool) {
	key, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	order, ok := s.tree.Get(key)
	if !ok {
		return nil, false
	}
	delete(s.byID, id)
	s.tree.Del(key)
	return order, true
}

// orders returns resting orders in price-time priority order, best first.
// Used by Book snapshots (e.g. the CLI's print command); not on the
// matcher's hot path.
func (s *sideBook) orders() []Order {
	out := make([]Order, 0, s.tree.Len())
	for it := s.tree.Iterator(); it.Valid(); it.Next() {
		out = append(out, *it.Value())
	}
	return out
}
