package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidUnit    = errors.New("unit must be piece, pack or box")
	ErrInvalidProduct = errors.New("product id required")

	// -- Resource State --
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)
