package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kassem10h/Gym-Poject/internal/app/service/cart"
	"github.com/kassem10h/Gym-Poject/internal/app/service/notification"
	"github.com/kassem10h/Gym-Poject/internal/app/service/payment"
	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/metrics"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Service converts staged cart selections into permanent Orders and Bookings.
// Process is all-or-nothing: every line is re-validated inside the same
// transaction that writes, with session rows locked FOR UPDATE so concurrent
// checkouts on the same session serialize on the capacity check.
type Service struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	gateway payment.Gateway
	carts   *cart.Service
	notify  *notification.Service
	metrics *metrics.Metrics
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, gateway payment.Gateway, carts *cart.Service, notify *notification.Service, m *metrics.Metrics) *Service {
	return &Service{db: db, log: log, gateway: gateway, carts: carts, notify: notify, metrics: m}
}

type Preview struct {
	Products   *cart.ProductCartView `json:"products"`
	Sessions   *cart.SessionCartView `json:"sessions"`
	GrandCents int64                 `json:"grand_total_cents"`
	TotalItems int                   `json:"total_items"`
}

// GetPreview is the read-only summary of both carts; invalid lines are
// already filtered (and lazily dropped) by the cart reads.
func (s *Service) GetPreview(ctx context.Context, userID string) (*Preview, error) {
	products, err := s.carts.GetProductCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.carts.GetSessionCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Preview{
		Products:   products,
		Sessions:   sessions,
		GrandCents: products.TotalCents + sessions.TotalCents,
		TotalItems: products.TotalItems + sessions.TotalItems,
	}, nil
}

type ProcessRequest struct {
	ProductCartItemIDs []string            `json:"product_cart_item_ids"`
	SessionCartItemIDs []string            `json:"session_cart_item_ids"`
	PaymentMethod      types.PaymentMethod `json:"payment_method"`
	CardDetails        types.CardDetails   `json:"card_details"`
}

// normalize collapses repeated cart item ids so a doubled selection books the
// line once instead of tripping the uniqueness constraint mid-commit.
func (r *ProcessRequest) normalize() {
	r.ProductCartItemIDs = lo.Uniq(r.ProductCartItemIDs)
	r.SessionCartItemIDs = lo.Uniq(r.SessionCartItemIDs)
}

type BookingSummary struct {
	BookingID   string `json:"booking_id"`
	SessionID   string `json:"session_id"`
	ClassType   string `json:"class_type"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TrainerName string `json:"trainer_name"`
}

type OrderSummary struct {
	OrderID       string `json:"order_id"`
	ProductsCount int    `json:"products_count"`
	TotalCents    int64  `json:"total_cents"`
}

type ProcessResult struct {
	TotalCents int64             `json:"total_amount_cents"`
	Order      *OrderSummary     `json:"order,omitempty"`
	Bookings   []*BookingSummary `json:"bookings"`
}

// orderLine pairs a consumed cart row with its priced product.
type orderLine struct {
	cartItem *models.CartItem
	product  *models.Product
}

// bookingLine pairs a consumed cart row with its locked session.
type bookingLine struct {
	cartItem *models.SessionCartItem
	session  *models.Session
}

// Process re-validates the selected cart lines, charges the gateway, and
// materializes the order and bookings atomically. Any line failure or a
// payment decline aborts with no effects. Notifications go out only after
// the transaction commits.
func (s *Service) Process(ctx context.Context, userID string, req *ProcessRequest) (*ProcessResult, error) {
	req.normalize()
	if len(req.ProductCartItemIDs) == 0 && len(req.SessionCartItemIDs) == 0 {
		return nil, apperr.Validation("no items selected for checkout")
	}
	if req.PaymentMethod == "" {
		return nil, apperr.Validation("payment_method is required")
	}

	result := &ProcessResult{Bookings: []*BookingSummary{}}
	var postCommit []func()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderLines, err := s.collectProductLines(ctx, tx, userID, req.ProductCartItemIDs)
		if err != nil {
			return err
		}
		bookingLines, err := s.collectSessionLines(ctx, tx, userID, req.SessionCartItemIDs)
		if err != nil {
			return err
		}

		var total int64
		for _, line := range orderLines {
			total += line.product.PriceCents * int64(line.cartItem.Quantity)
		}
		for _, line := range bookingLines {
			total += line.session.PriceCents
		}
		result.TotalCents = total

		if err := s.gateway.Charge(ctx, req.PaymentMethod, req.CardDetails, total); err != nil {
			s.metrics.PaymentsDeclined.Inc()
			return apperr.Payment("payment failed, please check your payment details")
		}

		if len(orderLines) > 0 {
			summary, err := s.materializeOrder(ctx, tx, userID, orderLines)
			if err != nil {
				return err
			}
			result.Order = summary
			orderID := summary.OrderID
			totalCents := summary.TotalCents
			postCommit = append(postCommit, func() {
				s.notify.OrderPlaced(ctx, userID, orderID, totalCents)
			})
		}

		if len(bookingLines) > 0 {
			var member models.User
			if err := tx.First(&member, "id = ?", userID).Error; err != nil {
				return fmt.Errorf("failed to load member: %w", err)
			}
			for _, line := range bookingLines {
				summary, notifyFns, err := s.materializeBooking(ctx, tx, &member, line)
				if err != nil {
					return err
				}
				result.Bookings = append(result.Bookings, summary)
				postCommit = append(postCommit, notifyFns...)
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.CheckoutsFailed.Inc()
		return nil, err
	}

	s.metrics.CheckoutsOK.Inc()
	s.metrics.BookingsCreated.Add(float64(len(result.Bookings)))
	logctx.FromCtx(ctx, s.log).Infow("checkout processed",
		"user_id", userID,
		"total_cents", result.TotalCents,
		"bookings", len(result.Bookings),
		"has_order", result.Order != nil,
	)
	for _, fn := range postCommit {
		fn()
	}
	return result, nil
}

// collectProductLines re-validates each selected product cart row against
// live product state.
func (s *Service) collectProductLines(ctx context.Context, tx *gorm.DB, userID string, ids []string) ([]*orderLine, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userCart models.Cart
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&userCart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product cart")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lines := make([]*orderLine, 0, len(ids))
	for _, id := range ids {
		var item models.CartItem
		err := tx.Preload("Product").
			Where("id = ? AND cart_id = ?", id, userCart.ID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product cart item " + id)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load cart item: %w", err)
		}
		if item.Product == nil || !item.Product.IsActive {
			name := "unknown"
			if item.Product != nil {
				name = item.Product.Name
			}
			return nil, apperr.Validation("product %q is no longer available", name)
		}
		lines = append(lines, &orderLine{cartItem: &item, product: item.Product})
	}
	return lines, nil
}

// validateSessionLine is the authoritative availability gate for one selected
// session: active, future, not full, no existing confirmed booking by this
// user. Any failure aborts the whole checkout, products included.
func validateSessionLine(session *models.Session, now time.Time, alreadyBooked bool) error {
	when := tool.FormatDate(session.Date) + " at " + tool.FormatClock(session.StartTime)
	if !session.IsActive {
		return apperr.Validation("session is no longer available")
	}
	if !session.StartsAt().After(now) {
		return apperr.Validation("session on %s is in the past", when)
	}
	if session.IsFull() {
		return apperr.Validation("session on %s is now full", when)
	}
	if alreadyBooked {
		return apperr.Conflict("you already have a booking for the session on %s", when)
	}
	return nil
}

// collectSessionLines locks each referenced session FOR UPDATE, then runs the
// availability gate on the locked row.
func (s *Service) collectSessionLines(ctx context.Context, tx *gorm.DB, userID string, ids []string) ([]*bookingLine, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var sessionCart models.SessionCart
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&sessionCart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("session cart")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}

	now := time.Now()
	lines := make([]*bookingLine, 0, len(ids))
	for _, id := range ids {
		var item models.SessionCartItem
		err := tx.Where("id = ? AND cart_id = ?", id, sessionCart.ID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session cart item " + id)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load session cart item: %w", err)
		}

		var session models.Session
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", item.SessionID).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("session is no longer available")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock session: %w", err)
		}
		if err := tx.Preload("ClassType").Preload("Trainer").First(&session, "id = ?", session.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to load session relations: %w", err)
		}

		var existing models.Booking
		err = tx.Where("member_id = ? AND session_id = ? AND status = ?",
			userID, session.ID, types.BookingStatusConfirmed).First(&existing).Error
		alreadyBooked := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing booking: %w", err)
		}

		if err := validateSessionLine(&session, now, alreadyBooked); err != nil {
			return nil, err
		}

		lines = append(lines, &bookingLine{cartItem: &item, session: &session})
	}
	return lines, nil
}

// materializeOrder freezes the product lines into an immutable order.
func (s *Service) materializeOrder(ctx context.Context, tx *gorm.DB, userID string, lines []*orderLine) (*OrderSummary, error) {
	var total int64
	for _, line := range lines {
		total += line.product.PriceCents * int64(line.cartItem.Quantity)
	}

	order := &models.Order{
		ID:         tool.GenerateUUIDV7(),
		UserID:     userID,
		TotalCents: total,
	}
	if err := tx.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, line := range lines {
		item := &models.OrderItem{
			ID:                  tool.GenerateUUIDV7(),
			OrderID:             order.ID,
			ProductID:           line.product.ID,
			Quantity:            line.cartItem.Quantity,
			PriceAtPurchaseCent: line.product.PriceCents,
		}
		if err := tx.Create(item).Error; err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
		if err := tx.Delete(line.cartItem).Error; err != nil {
			return nil, fmt.Errorf("failed to consume cart item: %w", err)
		}
	}
	return &OrderSummary{OrderID: order.ID, ProductsCount: len(lines), TotalCents: total}, nil
}

// materializeBooking creates the confirmed booking, bumps the session counter
// under the lock taken earlier, and consumes the cart row. Notification
// closures are returned for execution after commit.
func (s *Service) materializeBooking(ctx context.Context, tx *gorm.DB, member *models.User, line *bookingLine) (*BookingSummary, []func(), error) {
	session := line.session
	booking := &models.Booking{
		ID:        tool.GenerateUUIDV7(),
		MemberID:  member.ID,
		SessionID: session.ID,
		Status:    types.BookingStatusConfirmed,
	}
	if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Model(session).
		Update("current_bookings", gorm.Expr("current_bookings + 1")).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to increment session bookings: %w", err)
	}

	if err := tx.Delete(line.cartItem).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to consume session cart item: %w", err)
	}

	className := ""
	if session.ClassType != nil {
		className = session.ClassType.Name
	}
	trainerName := ""
	if session.Trainer != nil {
		trainerName = session.Trainer.FullName()
	}
	date := tool.FormatDate(session.Date)
	start := tool.FormatClock(session.StartTime)

	memberID, memberName, trainerID := member.ID, member.FullName(), session.TrainerID
	notifyFns := []func(){
		func() { s.notify.BookingConfirmed(ctx, memberID, className, date, start) },
		func() { s.notify.NewBooking(ctx, trainerID, memberName, className, date) },
	}

	summary := &BookingSummary{
		BookingID:   booking.ID,
		SessionID:   session.ID,
		ClassType:   className,
		Date:        date,
		StartTime:   start,
		EndTime:     tool.FormatClock(session.EndTime),
		TrainerName: trainerName,
	}
	return summary, notifyFns, nil
}
