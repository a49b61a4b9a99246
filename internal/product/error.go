package product

import "errors"

var (
	// -- Validation & Input --
	ErrNameDescriptionRequired = errors.New("name and description required")
	ErrProductIDRequired       = errors.New("product_id required")
	ErrNoFieldsToUpdate        = errors.New("no fields to update")
	ErrEmptyName               = errors.New("name cannot be empty")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
