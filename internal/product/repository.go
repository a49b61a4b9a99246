package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, input NewProductInput) (Product, error)
	Update(ctx context.Context, input UpdateProductInput) (Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetAll"),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, image_url, in_stock FROM products ORDER BY id`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.InStock); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (Product, error) {
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	var p Product
	err := r.db.QueryRowContext(ctx, `
	INSERT INTO products (name, description, image_url, in_stock)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, description, image_url, in_stock`,
		input.Name, input.Description, input.ImageURL, inStock,
	).Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.InStock)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
	}
	return p, err
}

// Update writes only the provided columns.
func (r *repository) Update(ctx context.Context, input UpdateProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Int64("product_id", input.ID),
	)

	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.ImageURL != nil {
		add("image_url", *input.ImageURL)
	}
	if input.InStock != nil {
		add("in_stock", *input.InStock)
	}
	if len(sets) == 0 {
		return Product{}, ErrNoFieldsToUpdate
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, input.ID)

	query := `UPDATE products SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d`, len(args)) +
		` RETURNING id, name, description, image_url, in_stock`

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.InStock)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product updated", zap.Int("fields", len(sets)-1))
	return p, nil
}
