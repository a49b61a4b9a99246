package app

import (
	"context"
	"fmt"
	"sync"

	"supplydesk/internal/cart"
	"supplydesk/internal/contract"
	"supplydesk/internal/order"
)

// Requisitions is the session's view of orders: the employee's own, or all
// of them for an administrator. The list only changes by a full reload.
type Requisitions struct {
	gw       Gateway
	notify   Notifier
	guard    *busyGuard
	identity Identity

	mu     sync.RWMutex
	orders []contract.Order
}

func newRequisitions(gw Gateway, n Notifier, guard *busyGuard, id Identity) *Requisitions {
	return &Requisitions{gw: gw, notify: n, guard: guard, identity: id}
}

func (r *Requisitions) Orders() []contract.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]contract.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *Requisitions) Find(orderID int64) (contract.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return contract.Order{}, false
}

func (r *Requisitions) Reload(ctx context.Context) error {
	return r.guard.run(func() error { return r.reload(ctx) })
}

func (r *Requisitions) reload(ctx context.Context) error {
	var scope *int64
	if !r.identity.IsAdmin {
		id := r.identity.ID
		scope = &id
	}

	orders, err := r.gw.Orders(ctx, scope)
	if err != nil {
		notifyError(ctx, r.notify, "Could not load orders", err)
		return err
	}

	r.mu.Lock()
	r.orders = orders
	r.mu.Unlock()
	return nil
}

// Submit turns the cart into an order. An empty cart is refused before any
// call. The cart is cleared only once the gateway has confirmed; a failed
// reload afterwards is reported but does not fail the submission.
func (r *Requisitions) Submit(ctx context.Context, c *cart.Cart) (int64, error) {
	if c.IsEmpty() {
		return 0, cart.ErrCartEmpty
	}

	var orderID int64
	err := r.guard.run(func() error {
		id, err := r.gw.CreateOrder(ctx, contract.CreateOrderRequest{
			UserID:       r.identity.ID,
			EmployeeName: r.identity.Username,
			Items:        c.Items(),
		})
		if err != nil {
			notifyError(ctx, r.notify, "Could not submit the order", err)
			return err
		}

		orderID = id
		c.Clear()
		notifyInfo(ctx, r.notify, fmt.Sprintf("Order #%d submitted", id))

		_ = r.reload(ctx)
		return nil
	})
	return orderID, err
}

// Advance moves an order to the one status that may follow its current
// one. Completed orders have nothing to advance to. On success the whole
// list is reloaded rather than patched.
func (r *Requisitions) Advance(ctx context.Context, orderID int64) (order.Status, error) {
	if !r.identity.IsAdmin {
		return "", ErrNotPermitted
	}

	o, ok := r.Find(orderID)
	if !ok {
		return "", ErrUnknownOrder
	}

	current, err := order.ParseStatus(o.Status)
	if err != nil {
		return "", err
	}
	next, ok := current.Next()
	if !ok {
		return "", order.ErrTerminalStatus
	}

	err = r.guard.run(func() error {
		if err := r.gw.UpdateOrder(ctx, orderID, string(next)); err != nil {
			notifyError(ctx, r.notify, fmt.Sprintf("Could not move order #%d to %s", orderID, next), err)
			return err
		}

		notifyInfo(ctx, r.notify, fmt.Sprintf("Order #%d is now %s", orderID, next))
		_ = r.reload(ctx)
		return nil
	})
	if err != nil {
		return "", err
	}
	return next, nil
}
