package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

type AdminListRequest struct {
	Filters  []*types.CommonFilter `json:"filters"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

type AdminBookingView struct {
	*BookingView
	MemberID    string `json:"member_id"`
	MemberName  string `json:"member_name"`
	MemberEmail string `json:"member_email"`
}

type AdminListResponse struct {
	Items []*AdminBookingView `json:"items"`
	Total int64               `json:"total"`
}

// AdminList pages through the full ledger with field filters.
func (s *Service) AdminList(ctx context.Context, req *AdminListRequest) (*AdminListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	where := clause.Where{Exprs: []clause.Expression{types.FiltersWhere{Filters: req.Filters}}}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Clauses(where).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []*models.Booking
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Clauses(where).
		Preload("Session").Preload("Session.ClassType").Preload("Session.Trainer").
		Preload("Member").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	out := &AdminListResponse{Items: make([]*AdminBookingView, 0, len(bookings)), Total: total}
	for _, b := range bookings {
		view := &AdminBookingView{BookingView: toBookingView(b), MemberID: b.MemberID}
		if b.Member != nil {
			view.MemberName = b.Member.FullName()
			view.MemberEmail = b.Member.Email
		}
		out.Items = append(out.Items, view)
	}
	return out, nil
}

// AdminCancel force-cancels any non-terminal booking, releasing the spot and
// notifying the member. No pre-start restriction applies to admins.
func (s *Service) AdminCancel(ctx context.Context, bookingID string) error {
	var notifyFn func()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.First(&booking, "id = ?", bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("booking")
		}
		if err != nil {
			return fmt.Errorf("failed to load booking: %w", err)
		}
		if booking.Status.Terminal() {
			return apperr.Validation("booking is already %s", booking.Status)
		}

		var session models.Session
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ?", booking.SessionID).Error
		if err != nil {
			return fmt.Errorf("failed to lock session: %w", err)
		}
		if err := tx.Preload("ClassType").First(&session, "id = ?", session.ID).Error; err != nil {
			return fmt.Errorf("failed to load session relations: %w", err)
		}

		if err := tx.Model(&booking).Update("status", types.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		if err := tx.Model(&session).
			Where("current_bookings > 0").
			Update("current_bookings", gorm.Expr("current_bookings - 1")).Error; err != nil {
			return fmt.Errorf("failed to release session spot: %w", err)
		}

		memberID := booking.MemberID
		className := ""
		if session.ClassType != nil {
			className = session.ClassType.Name
		}
		date := tool.FormatDate(session.Date)
		notifyFn = func() { s.notify.BookingCancelled(ctx, memberID, className, date) }
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.BookingsCancelled.Inc()
	logctx.FromCtx(ctx, s.log).Infow("booking cancelled by admin", "booking_id", bookingID)
	notifyFn()
	return nil
}

// affectedMembers lists the members holding the given bookings, deduplicated.
func affectedMembers(bookings []*models.Booking) []string {
	return lo.Uniq(lo.Map(bookings, func(b *models.Booking, _ int) string {
		return b.MemberID
	}))
}

// AdminCancelSession force-cancels an entire session: every confirmed booking
// flips to cancelled, the session is deactivated so it leaves the schedule,
// and each affected member is notified after commit.
func (s *Service) AdminCancelSession(ctx context.Context, sessionID string) error {
	var postCommit []func()
	var cancelled int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ?", sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("session")
		}
		if err != nil {
			return fmt.Errorf("failed to lock session: %w", err)
		}
		if !session.IsActive {
			return apperr.Validation("session is already cancelled")
		}
		if err := tx.Preload("ClassType").First(&session, "id = ?", session.ID).Error; err != nil {
			return fmt.Errorf("failed to load session relations: %w", err)
		}

		var bookings []*models.Booking
		if err := tx.Where("session_id = ? AND status = ?", sessionID, types.BookingStatusConfirmed).
			Find(&bookings).Error; err != nil {
			return fmt.Errorf("failed to list session bookings: %w", err)
		}
		if len(bookings) > 0 {
			if err := tx.Model(&models.Booking{}).
				Where("session_id = ? AND status = ?", sessionID, types.BookingStatusConfirmed).
				Update("status", types.BookingStatusCancelled).Error; err != nil {
				return fmt.Errorf("failed to cancel bookings: %w", err)
			}
		}

		if err := tx.Model(&session).
			Updates(map[string]any{"is_active": false, "current_bookings": 0}).Error; err != nil {
			return fmt.Errorf("failed to deactivate session: %w", err)
		}

		className := ""
		if session.ClassType != nil {
			className = session.ClassType.Name
		}
		date := tool.FormatDate(session.Date)
		for _, memberID := range affectedMembers(bookings) {
			id := memberID
			postCommit = append(postCommit, func() {
				s.notify.SessionCancelledByTrainer(ctx, id, className, date)
			})
		}
		cancelled = len(bookings)
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled > 0 {
		s.metrics.BookingsCancelled.Add(float64(cancelled))
	}
	logctx.FromCtx(ctx, s.log).Infow("session cancelled by admin",
		"session_id", sessionID, "bookings_cancelled", cancelled)
	for _, fn := range postCommit {
		fn()
	}
	return nil
}

// AdminComplete marks a confirmed booking completed once its session has
// started. The spot is not released.
func (s *Service) AdminComplete(ctx context.Context, bookingID string) error {
	var booking models.Booking
	err := s.db.WithContext(ctx).Preload("Session").First(&booking, "id = ?", bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("booking")
	}
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.Status != types.BookingStatusConfirmed {
		return apperr.Validation("only confirmed bookings can be completed")
	}
	if booking.Session != nil && booking.Session.StartsAt().After(time.Now()) {
		return apperr.Validation("cannot complete a booking before the session starts")
	}

	if err := s.db.WithContext(ctx).Model(&booking).
		Update("status", types.BookingStatusCompleted).Error; err != nil {
		return fmt.Errorf("failed to complete booking: %w", err)
	}
	return nil
}
