package order

import "time"

// DateLayout is how order dates are rendered on the wire (dd.mm.yyyy).
const DateLayout = "02.01.2006"

type Unit string

const (
	UnitPiece Unit = "piece"
	UnitPack  Unit = "pack"
	UnitBox   Unit = "box"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitPack, UnitBox:
		return true
	}
	return false
}

// ParseUnit accepts the wire spelling of a unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.Valid() {
		return "", ErrInvalidUnit
	}
	return u, nil
}

type Order struct {
	ID           int64
	UserID       int64
	EmployeeName string
	Status       Status
	CreatedAt    time.Time
	Items        []OrderItem
}

// OrderItem is a snapshot of the product taken when the order was created.
type OrderItem struct {
	OrderID     int64
	ProductID   int64
	Quantity    int
	Unit        Unit
	Name        string
	Description string
	ImageURL    string
}

type NewOrderItem struct {
	ProductID int64
	Quantity  int
	Unit      Unit
}

type CreateOrderInput struct {
	UserID       int64
	EmployeeName string
	Items        []NewOrderItem
}
