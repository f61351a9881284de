package matchcore

// crosses reports whether a resting order on the opposite side crosses the
// incoming order. Equal-price crossings do match: a resting ask crosses
// an incoming bid when ask.price <= bid.price; a resting bid crosses an
// incoming ask when bid.price >= ask.price.
func crosses(incoming Side, incomingPrice, restingPrice uint64) bool {
	if incoming.IsBid() {
		return restingPrice <= incomingPrice
	}
	return restingPrice >= incomingPrice
}

// match runs the price-time priority matching algorithm for an incoming
// order against the opposite side of the book, mutating resting orders
// and the incoming order's quantity in place, and inserting any residual
// onto the same side. It returns the executions in the order matches were
// produced: for each match, the resting (passive) leg first, the incoming
// (aggressive) leg second, both carrying the resting order's price —
// price improvement is always granted to the incoming side.
func match(book *Book, incoming *Order) []Execution {
	opp := book.opposite(incoming.Side)
	var execs []Execution

	for incoming.Quantity > 0 {
		resting, ok := opp.top()
		if !ok || !crosses(incoming.Side, incoming.Price, resting.Price) {
			break
		}

		tradedPrice := resting.Price
		tradedQty := resting.Quantity
		if incoming.Quantity < tradedQty {
			tradedQty = incoming.Quantity
		}

		execs = append(execs,
			executionFrom(*resting, tradedPrice, tradedQty),
			executionFrom(*incoming, tradedPrice, tradedQty),
		)

		resting.Quantity -= tradedQty
		incoming.Quantity -= tradedQty

		if resting.Quantity == 0 {
			opp.pop()
		}
	}

	if incoming.Quantity > 0 {
		same := book.side(incoming.Side)
		residual := *incoming
		same.insert(&residual)
	}

	return execs
}
