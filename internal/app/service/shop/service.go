package shop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
)

// Service is the public read side of the product catalog.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// ListProducts returns active products, optionally filtered by category name.
func (s *Service) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	q := s.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true)
	if category != "" {
		q = q.Joins("JOIN product_categories ON product_categories.id = products.category_id").
			Where("product_categories.name = ?", category)
	}
	var products []*models.Product
	if err := q.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one active product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

// ListCategories returns all product categories.
func (s *Service) ListCategories(ctx context.Context) ([]*models.ProductCategory, error) {
	var categories []*models.ProductCategory
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Module exposes the shop service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
