package product

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"supplydesk/internal/cache"
	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

const listCacheTTL = 10 * time.Minute

type Service interface {
	GetList(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, input NewProductInput) (Product, error)
	Update(ctx context.Context, input UpdateProductInput) (Product, error)
}

type service struct {
	repo  Repository
	cache cache.Cache // nil disables caching
}

func NewService(repo Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) listKey() string {
	return s.cache.GenerateKey("products", "all")
}

// GetList reads the catalog through the cache. Cache failures are logged and
// fall back to the database.
func (s *service) GetList(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetList"),
	)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, s.listKey())
		if err != nil {
			log.Warn("catalog cache read failed", zap.Error(err))
		} else if raw != "" {
			var products []Product
			if err := json.Unmarshal([]byte(raw), &products); err == nil {
				log.Debug("catalog cache hit", zap.Int("count", len(products)))
				return products, nil
			}
			log.Warn("catalog cache entry corrupt, reloading")
		}
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch product list", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, s.listKey(), data, listCacheTTL); err != nil {
				log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return products, nil
}

func (s *service) Create(ctx context.Context, input NewProductInput) (Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	if input.Name == "" || input.Description == "" {
		return Product{}, ErrNameDescriptionRequired
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		input.ImageURL = DefaultImageURL
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		return Product{}, err
	}

	s.invalidate(ctx)
	logger.FromCtx(ctx).Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
	)
	return p, nil
}

func (s *service) Update(ctx context.Context, input UpdateProductInput) (Product, error) {
	if input.ID == 0 {
		return Product{}, ErrProductIDRequired
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return Product{}, ErrEmptyName
	}
	if !input.HasAnyField() {
		return Product{}, ErrNoFieldsToUpdate
	}

	p, err := s.repo.Update(ctx, input)
	if err != nil {
		return Product{}, err
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.listKey()); err != nil {
		logger.FromCtx(ctx).Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
