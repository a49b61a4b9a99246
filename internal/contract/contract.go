// Package contract holds the JSON shapes exchanged with the gateway endpoint.
// Both the gateway handler and the gateway client speak these types.
package contract

type Action string

const (
	ActionLogin         Action = "login"
	ActionProducts      Action = "products"
	ActionCreateProduct Action = "create_product"
	ActionUpdateProduct Action = "update_product"
	ActionOrders        Action = "orders"
	ActionCreateOrder   Action = "create_order"
	ActionUpdateOrder   Action = "update_order"
)

// Known reports whether a is one of the gateway actions.
func (a Action) Known() bool {
	switch a {
	case ActionLogin, ActionProducts, ActionCreateProduct, ActionUpdateProduct,
		ActionOrders, ActionCreateOrder, ActionUpdateOrder:
		return true
	}
	return false
}

const (
	ActionParam = "action"
	UserIDParam = "user_id"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	InStock     bool   `json:"in_stock"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	InStock     *bool  `json:"in_stock,omitempty"`
}

// UpdateProductRequest carries only the fields being changed.
type UpdateProductRequest struct {
	ProductID   int64   `json:"product_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	InStock     *bool   `json:"in_stock,omitempty"`
}

type ProductResponse struct {
	Product Product `json:"product"`
}

type OrderItem struct {
	ProductID   int64  `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Order struct {
	ID       int64       `json:"id"`
	Employee string      `json:"employee"`
	Status   string      `json:"status"`
	Date     string      `json:"date"`
	Items    []OrderItem `json:"items"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type OrderLine struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

type CreateOrderRequest struct {
	UserID       int64       `json:"user_id"`
	EmployeeName string      `json:"employee_name"`
	Items        []OrderLine `json:"items"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type UpdateOrderRequest struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type UpdateOrderResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
