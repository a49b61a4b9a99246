package order

import "supplydesk/internal/contract"

func MapOrderToResponse(o *Order) contract.Order {
	items := make([]contract.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, contract.OrderItem{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Unit:        string(it.Unit),
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
		})
	}

	var date string
	if !o.CreatedAt.IsZero() {
		date = o.CreatedAt.Format(DateLayout)
	}

	return contract.Order{
		ID:       o.ID,
		Employee: o.EmployeeName,
		Status:   string(o.Status),
		Date:     date,
		Items:    items,
	}
}

func MapOrdersToResponse(orders []*Order) []contract.Order {
	out := make([]contract.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, MapOrderToResponse(o))
	}
	return out
}

// MapCreateRequest converts the wire request into service input. Units are
// validated later by the service.
func MapCreateRequest(req contract.CreateOrderRequest) CreateOrderInput {
	items := make([]NewOrderItem, 0, len(req.Items))
	for _, l := range req.Items {
		items = append(items, NewOrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      Unit(l.Unit),
		})
	}
	return CreateOrderInput{
		UserID:       req.UserID,
		EmployeeName: req.EmployeeName,
		Items:        items,
	}
}
