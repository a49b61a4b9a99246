package cart

import (
	"supplydesk/internal/contract"
	"supplydesk/internal/order"
)

// Line is one product in one unit. Product is kept whole so the cart can be
// rendered without another catalog lookup.
type Line struct {
	Product  contract.Product
	Quantity int
	Unit     order.Unit
}

type lineKey struct {
	productID int64
	unit      order.Unit
}

func (l Line) key() lineKey {
	return lineKey{productID: l.Product.ID, unit: l.Unit}
}
