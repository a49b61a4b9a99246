package app

import (
	"context"
	"sync"

	"supplydesk/internal/contract"
)

// Catalog is the session's copy of the product list.
type Catalog struct {
	gw     Gateway
	notify Notifier
	guard  *busyGuard

	mu       sync.RWMutex
	products []contract.Product
}

func newCatalog(gw Gateway, n Notifier, guard *busyGuard) *Catalog {
	return &Catalog{gw: gw, notify: n, guard: guard}
}

// Products returns the last loaded list.
func (c *Catalog) Products() []contract.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]contract.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Find(id int64) (contract.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return contract.Product{}, false
}

// List fetches the catalog and replaces the local copy wholesale.
func (c *Catalog) List(ctx context.Context) ([]contract.Product, error) {
	var out []contract.Product
	err := c.guard.run(func() error {
		var err error
		out, err = c.load(ctx)
		return err
	})
	return out, err
}

func (c *Catalog) load(ctx context.Context) ([]contract.Product, error) {
	products, err := c.gw.Products(ctx)
	if err != nil {
		notifyError(ctx, c.notify, "Could not load the catalog", err)
		return nil, err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return c.Products(), nil
}

// Create adds a product and appends the gateway's record locally.
func (c *Catalog) Create(ctx context.Context, req contract.CreateProductRequest) (contract.Product, error) {
	var created contract.Product
	err := c.guard.run(func() error {
		p, err := c.gw.CreateProduct(ctx, req)
		if err != nil {
			notifyError(ctx, c.notify, "Could not create the product", err)
			return err
		}

		c.mu.Lock()
		c.products = append(c.products, p)
		c.mu.Unlock()

		created = p
		notifyInfo(ctx, c.notify, "Product \""+p.Name+"\" added")
		return nil
	})
	return created, err
}

// Update applies a partial change and replaces the local record by id.
func (c *Catalog) Update(ctx context.Context, req contract.UpdateProductRequest) (contract.Product, error) {
	var updated contract.Product
	err := c.guard.run(func() error {
		p, err := c.gw.UpdateProduct(ctx, req)
		if err != nil {
			notifyError(ctx, c.notify, "Could not update the product", err)
			return err
		}

		c.mu.Lock()
		replaced := false
		for i := range c.products {
			if c.products[i].ID == p.ID {
				c.products[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			c.products = append(c.products, p)
		}
		c.mu.Unlock()

		updated = p
		notifyInfo(ctx, c.notify, "Product \""+p.Name+"\" updated")
		return nil
	})
	return updated, err
}
