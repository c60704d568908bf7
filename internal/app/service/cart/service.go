package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
)

// Service owns both staging areas: the product cart and the session cart.
// Carts are created on first add; rows disappear at checkout, on explicit
// removal, or (session cart only) by lazy invalidation at read time.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type ProductLine struct {
	CartItemID string  `json:"cart_item_id"`
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Image      *string `json:"image"`
	PriceCents int64   `json:"price_cents"`
	Quantity   int     `json:"quantity"`
	TotalCents int64   `json:"total_cents"`
}

type ProductCartView struct {
	CartID     string         `json:"cart_id"`
	Items      []*ProductLine `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalCents int64          `json:"total_cents"`
}

func toProductLine(item *models.CartItem) *ProductLine {
	line := &ProductLine{
		CartItemID: item.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	}
	if item.Product != nil {
		line.Name = item.Product.Name
		line.PriceCents = item.Product.PriceCents
		line.TotalCents = item.Product.PriceCents * int64(item.Quantity)
		if len(item.Product.Images) > 0 {
			line.Image = &item.Product.Images[0]
		}
	}
	return line
}

// GetProductCart returns the user's cart, listing only active products.
func (s *Service) GetProductCart(ctx context.Context, userID string) (*ProductCartView, error) {
	view := &ProductCartView{Items: []*ProductLine{}}

	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	view.CartID = cart.ID

	var items []*models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		line := toProductLine(item)
		view.Items = append(view.Items, line)
		view.TotalCents += line.TotalCents
	}
	view.TotalItems = len(view.Items)
	return view, nil
}

// AddProduct adds (or merges) a product line into the user's cart.
func (s *Service) AddProduct(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	var product models.Product
	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", productID, true).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	var out *models.CartItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.ensureCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				ID:        tool.GenerateUUIDV7(),
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
		default:
			return fmt.Errorf("failed to load cart item: %w", err)
		}
		out = &item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProductQuantity replaces the quantity of an owned cart line.
func (s *Service) UpdateProductQuantity(ctx context.Context, userID, cartItemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}
	item, err := s.ownedCartItem(ctx, userID, cartItemID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return item, nil
}

// RemoveProduct deletes an owned cart line.
func (s *Service) RemoveProduct(ctx context.Context, userID, cartItemID string) error {
	item, err := s.ownedCartItem(ctx, userID, cartItemID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ClearProductCart deletes every line in the user's cart.
func (s *Service) ClearProductCart(ctx context.Context, userID string) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) ensureCart(ctx context.Context, tx *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{ID: tool.GenerateUUIDV7(), UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &cart, nil
}

func (s *Service) ownedCartItem(ctx context.Context, userID, cartItemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", cartItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("cart item")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	var cart models.Cart
	if err := s.db.WithContext(ctx).First(&cart, "id = ?", item.CartID).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.UserID != userID {
		return nil, apperr.Forbidden("not your cart item")
	}
	return &item, nil
}

// ProductLineTotals sums the given lines; kept separate for reuse by checkout.
func ProductLineTotals(lines []*ProductLine) int64 {
	return lo.SumBy(lines, func(l *ProductLine) int64 { return l.TotalCents })
}
