package app

import (
	"context"

	"supplydesk/internal/cart"
	"supplydesk/internal/contract"
	"supplydesk/internal/order"
)

// Workspace is what a logged-in user can do. It is either an
// *EmployeeWorkspace or an *AdminWorkspace.
type Workspace interface {
	Identity() Identity
	Products() []contract.Product
	Orders() []contract.Order
	Reload(ctx context.Context) error
}

type EmployeeWorkspace struct {
	identity Identity
	catalog  *Catalog
	orders   *Requisitions
	cart     *cart.Cart
}

func newEmployeeWorkspace(id Identity, c *Catalog, r *Requisitions) *EmployeeWorkspace {
	return &EmployeeWorkspace{identity: id, catalog: c, orders: r, cart: cart.New()}
}

func (w *EmployeeWorkspace) Identity() Identity           { return w.identity }
func (w *EmployeeWorkspace) Products() []contract.Product { return w.catalog.Products() }
func (w *EmployeeWorkspace) Orders() []contract.Order     { return w.orders.Orders() }
func (w *EmployeeWorkspace) Cart() *cart.Cart             { return w.cart }

// Reload refreshes the catalog and the employee's own orders.
func (w *EmployeeWorkspace) Reload(ctx context.Context) error {
	if _, err := w.catalog.List(ctx); err != nil {
		return err
	}
	return w.orders.Reload(ctx)
}

// AddToCart looks the product up in the loaded catalog and adds it.
func (w *EmployeeWorkspace) AddToCart(productID int64, quantity int, unit order.Unit) error {
	p, ok := w.catalog.Find(productID)
	if !ok {
		return ErrUnknownProduct
	}
	return w.cart.Add(p, quantity, unit)
}

func (w *EmployeeWorkspace) RemoveFromCart(productID int64, unit order.Unit) error {
	return w.cart.Remove(productID, unit)
}

func (w *EmployeeWorkspace) Submit(ctx context.Context) (int64, error) {
	return w.orders.Submit(ctx, w.cart)
}

type AdminWorkspace struct {
	identity Identity
	catalog  *Catalog
	orders   *Requisitions
}

func (w *AdminWorkspace) Identity() Identity           { return w.identity }
func (w *AdminWorkspace) Products() []contract.Product { return w.catalog.Products() }
func (w *AdminWorkspace) Orders() []contract.Order     { return w.orders.Orders() }

// Reload refreshes the catalog and every order.
func (w *AdminWorkspace) Reload(ctx context.Context) error {
	if _, err := w.catalog.List(ctx); err != nil {
		return err
	}
	return w.orders.Reload(ctx)
}

func (w *AdminWorkspace) CreateProduct(ctx context.Context, req contract.CreateProductRequest) (contract.Product, error) {
	return w.catalog.Create(ctx, req)
}

func (w *AdminWorkspace) UpdateProduct(ctx context.Context, req contract.UpdateProductRequest) (contract.Product, error) {
	return w.catalog.Update(ctx, req)
}

func (w *AdminWorkspace) Advance(ctx context.Context, orderID int64) (order.Status, error) {
	return w.orders.Advance(ctx, orderID)
}
