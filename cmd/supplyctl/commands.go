package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"supplydesk/internal/app"
	"supplydesk/internal/cart"
	"supplydesk/internal/contract"
	"supplydesk/internal/order"
	"supplydesk/internal/utils"
)

type command func(ctx context.Context, ws app.Workspace, args []string, out io.Writer) error

var commands = map[string]command{
	"products":       listProducts,
	"orders":         listOrders,
	"order":          submitOrder,
	"advance":        advanceOrder,
	"add-product":    addProduct,
	"update-product": updateProduct,
}

func listProducts(_ context.Context, ws app.Workspace, _ []string, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tDESCRIPTION")
	for _, p := range ws.Products() {
		stock := "in stock"
		if !p.InStock {
			stock = "out"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, stock, p.Description)
	}
	return tw.Flush()
}

func listOrders(_ context.Context, ws app.Workspace, _ []string, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tEMPLOYEE\tSTATUS\tITEMS")
	for _, o := range ws.Orders() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", o.ID, o.Date, o.Employee, o.Status, formatItems(o.Items))
	}
	return tw.Flush()
}

func formatItems(items []contract.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d %s", it.Name, it.Quantity, it.Unit))
	}
	return strings.Join(parts, ", ")
}

// itemsFlag collects repeated -item ID:QTY:UNIT values.
type itemsFlag []string

func (f *itemsFlag) String() string { return strings.Join(*f, ",") }

func (f *itemsFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

type itemArg struct {
	productID int64
	quantity  int
	unit      order.Unit
}

// parseItem reads ID:QTY:UNIT. The quantity is clamped, never rejected.
func parseItem(raw string) (itemArg, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return itemArg{}, fmt.Errorf("item %q: want ID:QTY:UNIT", raw)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return itemArg{}, fmt.Errorf("item %q: bad product id", raw)
	}
	unit, err := order.ParseUnit(parts[2])
	if err != nil {
		return itemArg{}, fmt.Errorf("item %q: %w", raw, cart.ErrInvalidUnit)
	}
	return itemArg{productID: id, quantity: cart.ClampQuantity(parts[1]), unit: unit}, nil
}

func submitOrder(ctx context.Context, ws app.Workspace, args []string, out io.Writer) error {
	emp, ok := ws.(*app.EmployeeWorkspace)
	if !ok {
		return errEmployeeOnly
	}

	var items itemsFlag
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.Var(&items, "item", "ID:QTY:UNIT, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, raw := range items {
		item, err := parseItem(raw)
		if err != nil {
			return err
		}
		if err := emp.AddToCart(item.productID, item.quantity, item.unit); err != nil {
			return fmt.Errorf("item %q: %w", raw, err)
		}
	}

	id, err := emp.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "order %d submitted\n", id)
	return nil
}

func advanceOrder(ctx context.Context, ws app.Workspace, args []string, out io.Writer) error {
	admin, ok := ws.(*app.AdminWorkspace)
	if !ok {
		return app.ErrNotPermitted
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: advance ORDER_ID")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id %q", args[0])
	}

	status, err := admin.Advance(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "order %d is now %s\n", id, status)
	return nil
}

func addProduct(ctx context.Context, ws app.Workspace, args []string, out io.Writer) error {
	admin, ok := ws.(*app.AdminWorkspace)
	if !ok {
		return app.ErrNotPermitted
	}

	fs := flag.NewFlagSet("add-product", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	desc := fs.String("description", "", "product description")
	image := fs.String("image", "", "image url")
	outOfStock := fs.Bool("out-of-stock", false, "create as out of stock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := contract.CreateProductRequest{Name: *name, Description: *desc, ImageURL: *image}
	if *outOfStock {
		req.InStock = utils.BoolPtr(false)
	}

	p, err := admin.CreateProduct(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "product %d created\n", p.ID)
	return nil
}

func updateProduct(ctx context.Context, ws app.Workspace, args []string, out io.Writer) error {
	admin, ok := ws.(*app.AdminWorkspace)
	if !ok {
		return app.ErrNotPermitted
	}

	fs := flag.NewFlagSet("update-product", flag.ContinueOnError)
	id := fs.Int64("id", 0, "product id")
	name := fs.String("name", "", "new name")
	desc := fs.String("description", "", "new description")
	image := fs.String("image", "", "new image url")
	inStock := fs.String("in-stock", "", "true or false")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// only flags given on the command line become part of the patch
	req := contract.UpdateProductRequest{ProductID: *id}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = name
		case "description":
			req.Description = desc
		case "image":
			req.ImageURL = image
		case "in-stock":
			b, err := strconv.ParseBool(*inStock)
			if err != nil {
				parseErr = fmt.Errorf("-in-stock: %w", err)
				return
			}
			req.InStock = utils.BoolPtr(b)
		}
	})
	if parseErr != nil {
		return parseErr
	}

	p, err := admin.UpdateProduct(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "product %d updated\n", p.ID)
	return nil
}
