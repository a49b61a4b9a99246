package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingUser       = errors.New("user_id and items required")
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidUnit       = errors.New("invalid unit")
	ErrOrderIDRequired   = errors.New("order_id required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")

	// -- Resource State --
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrTerminalStatus  = errors.New("order is already completed")

	// -- Database & Operation Failures --
	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedFetchOrders = errors.New("failed to fetch orders")
	ErrFailedUpdateOrder = errors.New("failed to update order")
)
