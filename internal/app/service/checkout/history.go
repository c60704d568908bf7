package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/kassem10h/Gym-Poject/internal/models"
)

type OrderItemView struct {
	ProductID           string `json:"product_id"`
	ProductName         string `json:"product_name"`
	Quantity            int    `json:"quantity"`
	PriceAtPurchaseCent int64  `json:"price_at_purchase_cents"`
}

type OrderView struct {
	OrderID    string           `json:"order_id"`
	TotalCents int64            `json:"total_cents"`
	CreatedAt  time.Time        `json:"created_at"`
	Items      []*OrderItemView `json:"items"`
}

// OrderHistory lists the user's orders, newest first.
func (s *Service) OrderHistory(ctx context.Context, userID string) ([]*OrderView, error) {
	var orders []*models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		view := &OrderView{
			OrderID:    order.ID,
			TotalCents: order.TotalCents,
			CreatedAt:  order.CreatedAt,
			Items:      []*OrderItemView{},
		}
		var items []*models.OrderItem
		if err := s.db.WithContext(ctx).Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return nil, fmt.Errorf("failed to load order items: %w", err)
		}
		for _, item := range items {
			iv := &OrderItemView{
				ProductID:           item.ProductID,
				Quantity:            item.Quantity,
				PriceAtPurchaseCent: item.PriceAtPurchaseCent,
			}
			var product models.Product
			if err := s.db.WithContext(ctx).First(&product, "id = ?", item.ProductID).Error; err == nil {
				iv.ProductName = product.Name
			}
			view.Items = append(view.Items, iv)
		}
		views = append(views, view)
	}
	return views, nil
}
