package app

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBusy               = errors.New("another request is still in flight")
	ErrNotPermitted       = errors.New("operation requires an administrator")
	ErrUnknownProduct     = errors.New("product is not in the loaded catalog")
	ErrUnknownOrder       = errors.New("order is not in the loaded list")
	ErrNotLoggedIn        = errors.New("no active session")
)
