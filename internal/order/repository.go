package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"supplydesk/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	FetchOrders(ctx context.Context, userID *int64) ([]*Order, error)
	FetchOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error)
	CreateOrderTx(ctx context.Context, input CreateOrderInput) (int64, error)
	GetOrderStatus(ctx context.Context, orderID int64) (Status, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// FetchOrders lists orders newest first. A nil userID lists every order.
func (r *repository) FetchOrders(ctx context.Context, userID *int64) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FetchOrders"),
	)

	start := time.Now()

	query := `
	SELECT o.id, o.user_id, o.employee_name, o.status, o.created_at
	FROM orders o`
	var args []any
	if userID != nil {
		query += `
	WHERE o.user_id = $1`
		args = append(args, *userID)
		log = log.With(zap.Int64("filter_user_id", *userID))
	}
	query += `
	ORDER BY o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.UserID, &o.EmployeeName, &o.Status, &o.CreatedAt); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

func (r *repository) FetchOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	result := make(map[int64][]OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT order_id, product_id, quantity, unit, name, description, image_url
	FROM order_items
	WHERE order_id = ANY($1)
	ORDER BY id`, pq.Array(orderIDs))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.OrderID,
			&it.ProductID,
			&it.Quantity,
			&it.Unit,
			&it.Name,
			&it.Description,
			&it.ImageURL,
		); err != nil {
			return nil, err
		}
		result[it.OrderID] = append(result[it.OrderID], it)
	}

	return result, rows.Err()
}

// CreateOrderTx inserts the order header and its items in one transaction.
// Item name, description and image are copied from the product row so later
// catalog edits leave the order untouched.
func (r *repository) CreateOrderTx(ctx context.Context, input CreateOrderInput) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int64("user_id", input.UserID),
		zap.Int("item_count", len(input.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin tx", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	var orderID int64
	err = tx.QueryRowContext(ctx, `
	INSERT INTO orders (user_id, employee_name, status)
	VALUES ($1, $2, $3)
	RETURNING id`,
		input.UserID, input.EmployeeName, StatusPending,
	).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, it := range input.Items {
		res, err := tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit, name, description, image_url)
		SELECT $1, p.id, $3, $4, p.name, p.description, p.image_url
		FROM products p
		WHERE p.id = $2`,
			orderID, it.ProductID, it.Quantity, it.Unit,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int64("product_id", it.ProductID),
				zap.Error(err),
			)
			return 0, err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			log.Warn("order item references unknown product", zap.Int64("product_id", it.ProductID))
			return 0, ErrProductNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return 0, err
	}

	log.Info("order created", zap.Int64("order_id", orderID))
	return orderID, nil
}

func (r *repository) GetOrderStatus(ctx context.Context, orderID int64) (Status, error) {
	var status Status
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = $1`, orderID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	return status, err
}

func (r *repository) UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE orders
	SET status = $1, updated_at = NOW()
	WHERE id = $2`, status, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
