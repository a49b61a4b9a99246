package product

// DefaultImageURL is used when a product is created without an image.
const DefaultImageURL = "/placeholder.svg"

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	InStock     bool   `json:"in_stock"`
}

type NewProductInput struct {
	Name        string
	Description string
	ImageURL    string
	InStock     *bool
}

// UpdateProductInput holds a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	ID          int64
	Name        *string
	Description *string
	ImageURL    *string
	InStock     *bool
}

func (in UpdateProductInput) HasAnyField() bool {
	return in.Name != nil ||
		in.Description != nil ||
		in.ImageURL != nil ||
		in.InStock != nil
}
