package cart

import "supplydesk/internal/contract"

// MapLinesToOrderLines projects cart lines into the create_order payload.
func MapLinesToOrderLines(lines []Line) []contract.OrderLine {
	out := make([]contract.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, contract.OrderLine{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Unit:      string(l.Unit),
		})
	}
	return out
}

func (c *Cart) Items() []contract.OrderLine {
	return MapLinesToOrderLines(c.lines)
}
