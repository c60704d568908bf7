package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/app/service/schedule"
	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

type SessionLine struct {
	CartItemID     string `json:"cart_item_id"`
	SessionID      string `json:"session_id"`
	ClassType      string `json:"class_type"`
	TrainerName    string `json:"trainer_name"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	PriceCents     int64  `json:"price_cents"`
	SpotsRemaining int    `json:"spots_remaining"`
}

type SessionCartView struct {
	CartID     string         `json:"cart_id"`
	Items      []*SessionLine `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalCents int64          `json:"total_cents"`
}

func toSessionLine(item *models.SessionCartItem) *SessionLine {
	line := &SessionLine{CartItemID: item.ID, SessionID: item.SessionID}
	if s := item.Session; s != nil {
		line.Date = tool.FormatDate(s.Date)
		line.StartTime = tool.FormatClock(s.StartTime)
		line.EndTime = tool.FormatClock(s.EndTime)
		line.PriceCents = s.PriceCents
		line.SpotsRemaining = s.SpotsRemaining()
		if s.ClassType != nil {
			line.ClassType = s.ClassType.Name
		}
		if s.Trainer != nil {
			line.TrainerName = s.Trainer.FullName()
		}
	}
	return line
}

// GetSessionCart returns the user's session cart. Rows whose session became
// inactive, full or time-lapsed are deleted here rather than by any
// background job; the cart read is the invalidation point.
func (s *Service) GetSessionCart(ctx context.Context, userID string) (*SessionCartView, error) {
	view := &SessionCartView{Items: []*SessionLine{}}

	var cart models.SessionCart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}
	view.CartID = cart.ID

	var items []*models.SessionCartItem
	err = s.db.WithContext(ctx).
		Preload("Session").Preload("Session.ClassType").Preload("Session.Trainer").
		Where("cart_id = ?", cart.ID).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load session cart items: %w", err)
	}

	now := time.Now()
	var stale []string
	for _, item := range items {
		if item.Session == nil || !item.Session.Bookable(now) {
			stale = append(stale, item.ID)
			continue
		}
		line := toSessionLine(item)
		view.Items = append(view.Items, line)
		view.TotalCents += line.PriceCents
	}
	if len(stale) > 0 {
		if err := s.db.WithContext(ctx).Where("id IN ?", stale).Delete(&models.SessionCartItem{}).Error; err != nil {
			return nil, fmt.Errorf("failed to drop stale cart items: %w", err)
		}
		logctx.FromCtx(ctx, s.log).Infow("dropped stale session cart items", "user_id", userID, "count", len(stale))
	}
	view.TotalItems = len(view.Items)
	return view, nil
}

// AddSession stages a session for checkout. Rejects sessions that fail the
// availability gate, duplicates, sessions already booked, and time conflicts
// with other staged sessions on the same date.
func (s *Service) AddSession(ctx context.Context, userID, sessionID string) (*SessionLine, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("ClassType").
		Where("id = ? AND is_active = ?", sessionID, true).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("session")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	now := time.Now()
	if !session.StartsAt().After(now) {
		return nil, apperr.Validation("cannot book a session in the past")
	}
	if session.IsFull() {
		return nil, apperr.Validation("this session is already full")
	}

	var existingBooking models.Booking
	err = s.db.WithContext(ctx).
		Where("member_id = ? AND session_id = ? AND status = ?", userID, sessionID, types.BookingStatusConfirmed).
		First(&existingBooking).Error
	if err == nil {
		return nil, apperr.Conflict("you have already booked this session")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check bookings: %w", err)
	}

	var out *SessionLine
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.ensureSessionCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		var dup models.SessionCartItem
		err = tx.Where("cart_id = ? AND session_id = ?", cart.ID, sessionID).First(&dup).Error
		if err == nil {
			return apperr.Conflict("this session is already in your cart")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check cart duplicates: %w", err)
		}

		// Reject overlaps with other staged sessions on the same date.
		var staged []*models.SessionCartItem
		if err := tx.Preload("Session").Preload("Session.ClassType").
			Where("cart_id = ?", cart.ID).Find(&staged).Error; err != nil {
			return fmt.Errorf("failed to load staged sessions: %w", err)
		}
		for _, item := range staged {
			other := item.Session
			if other == nil || !time.Time(other.Date).Equal(time.Time(session.Date)) {
				continue
			}
			if schedule.Overlaps(session.StartTime, session.EndTime, other.StartTime, other.EndTime) {
				name := ""
				if other.ClassType != nil {
					name = other.ClassType.Name
				}
				return apperr.Conflict(
					"time conflict: you already have a %q session in your cart from %s to %s on this date",
					name, tool.FormatClock(other.StartTime), tool.FormatClock(other.EndTime))
			}
		}

		item := &models.SessionCartItem{
			ID:        tool.GenerateUUIDV7(),
			CartID:    cart.ID,
			SessionID: sessionID,
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create session cart item: %w", err)
		}
		item.Session = &session
		out = toSessionLine(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveSession deletes an owned session cart line.
func (s *Service) RemoveSession(ctx context.Context, userID, cartItemID string) error {
	var item models.SessionCartItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", cartItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("cart item")
	}
	if err != nil {
		return fmt.Errorf("failed to load cart item: %w", err)
	}
	var cart models.SessionCart
	if err := s.db.WithContext(ctx).First(&cart, "id = ?", item.CartID).Error; err != nil {
		return fmt.Errorf("failed to load session cart: %w", err)
	}
	if cart.UserID != userID {
		return apperr.Forbidden("not your cart item")
	}
	if err := s.db.WithContext(ctx).Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ClearSessionCart deletes every line in the user's session cart.
func (s *Service) ClearSessionCart(ctx context.Context, userID string) error {
	var cart models.SessionCart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session cart: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.SessionCartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear session cart: %w", err)
	}
	return nil
}

func (s *Service) ensureSessionCart(ctx context.Context, tx *gorm.DB, userID string) (*models.SessionCart, error) {
	var cart models.SessionCart
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.SessionCart{ID: tool.GenerateUUIDV7(), UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create session cart: %w", err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}
	return &cart, nil
}
