package gateway

import (
	"errors"
	"net/http"

	"supplydesk/internal/order"
	"supplydesk/internal/product"
	"supplydesk/internal/user"
)

const (
	msgNotFound           = "Not found"
	msgInvalidBody        = "Invalid request body"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidUserID      = "Invalid user_id"
	msgUnauthorized       = "Unauthorized"
	msgForbidden          = "Forbidden"
	msgInternal           = "Internal server error"
)

var errEmptyBody = errors.New("empty request body")

type errorMapping struct {
	err    error
	status int
	msg    string
}

// errorTable is checked in order; the first errors.Is match wins.
var errorTable = []errorMapping{
	{user.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},

	{product.ErrNameDescriptionRequired, http.StatusBadRequest, "Name and description required"},
	{product.ErrProductIDRequired, http.StatusBadRequest, "product_id required"},
	{product.ErrNoFieldsToUpdate, http.StatusBadRequest, "No fields to update"},
	{product.ErrEmptyName, http.StatusBadRequest, "Name cannot be empty"},
	{product.ErrProductNotFound, http.StatusNotFound, "Product not found"},

	{order.ErrMissingUser, http.StatusBadRequest, "user_id and items required"},
	{order.ErrEmptyItems, http.StatusBadRequest, "user_id and items required"},
	{order.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be at least 1"},
	{order.ErrInvalidUnit, http.StatusBadRequest, "Invalid unit"},
	{order.ErrProductNotFound, http.StatusBadRequest, "Unknown product"},
	{order.ErrOrderIDRequired, http.StatusBadRequest, "order_id required"},
	{order.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{order.ErrInvalidTransition, http.StatusBadRequest, "Invalid status transition"},
	{order.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
}

func mapError(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, msgInternal
}
