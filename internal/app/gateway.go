package app

import (
	"context"

	"supplydesk/internal/contract"
)

// Gateway is the remote side of every operation. *client.Client satisfies it.
type Gateway interface {
	Login(ctx context.Context, username, password string) (contract.LoginResponse, error)
	SetToken(token string)
	Products(ctx context.Context) ([]contract.Product, error)
	CreateProduct(ctx context.Context, req contract.CreateProductRequest) (contract.Product, error)
	UpdateProduct(ctx context.Context, req contract.UpdateProductRequest) (contract.Product, error)
	Orders(ctx context.Context, userID *int64) ([]contract.Order, error)
	CreateOrder(ctx context.Context, req contract.CreateOrderRequest) (int64, error)
	UpdateOrder(ctx context.Context, orderID int64, status string) error
}
