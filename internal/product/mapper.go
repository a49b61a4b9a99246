package product

import "supplydesk/internal/contract"

func MapProductToResponse(p Product) contract.Product {
	return contract.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
	}
}

func MapProductsToResponse(ps []Product) []contract.Product {
	out := make([]contract.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, MapProductToResponse(p))
	}
	return out
}

func MapCreateRequest(req contract.CreateProductRequest) NewProductInput {
	return NewProductInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	}
}

func MapUpdateRequest(req contract.UpdateProductRequest) UpdateProductInput {
	return UpdateProductInput{
		ID:          req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	}
}
