package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kassem10h/Gym-Poject/internal/app/service/notification"
	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/metrics"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Service manages the booking ledger after checkout has written to it.
// Bookings are only created by checkout; here they are listed, cancelled and
// completed. Cancellation locks the session row before releasing the spot so
// the capacity counter stays consistent with concurrent checkouts.
type Service struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	notify  *notification.Service
	metrics *metrics.Metrics
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, notify *notification.Service, m *metrics.Metrics) *Service {
	return &Service{db: db, log: log, notify: notify, metrics: m}
}

type BookingView struct {
	ID          string              `json:"id"`
	SessionID   string              `json:"session_id"`
	ClassType   string              `json:"class_type"`
	TrainerName string              `json:"trainer_name"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	PriceCents  int64               `json:"price_cents"`
	Status      types.BookingStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toBookingView(b *models.Booking) *BookingView {
	view := &BookingView{
		ID:        b.ID,
		SessionID: b.SessionID,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if s := b.Session; s != nil {
		view.Date = tool.FormatDate(s.Date)
		view.StartTime = tool.FormatClock(s.StartTime)
		view.EndTime = tool.FormatClock(s.EndTime)
		view.PriceCents = s.PriceCents
		if s.ClassType != nil {
			view.ClassType = s.ClassType.Name
		}
		if s.Trainer != nil {
			view.TrainerName = s.Trainer.FullName()
		}
	}
	return view
}

// History lists the member's bookings, optionally filtered by status,
// newest first.
func (s *Service) History(ctx context.Context, memberID string, status types.BookingStatus) ([]*BookingView, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.Validation("invalid booking status %q", status)
	}

	q := s.db.WithContext(ctx).
		Preload("Session").Preload("Session.ClassType").Preload("Session.Trainer").
		Where("member_id = ?", memberID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []*models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(b))
	}
	return views, nil
}

// CancelByMember cancels an owned confirmed booking before the session
// starts, releasing the spot under a session row lock.
func (s *Service) CancelByMember(ctx context.Context, memberID, bookingID string) error {
	var notifyFns []func()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.First(&booking, "id = ?", bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("booking")
		}
		if err != nil {
			return fmt.Errorf("failed to load booking: %w", err)
		}
		if booking.MemberID != memberID {
			return apperr.Forbidden("not your booking")
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
		if !session.StartsAt().After(time.Now()) {
			return apperr.Validation("cannot cancel a booking after the session has started")
		}

		if err := tx.Model(&booking).Update("status", types.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		if err := tx.Model(&session).
			Where("current_bookings > 0").
			Update("current_bookings", gorm.Expr("current_bookings - 1")).Error; err != nil {
			return fmt.Errorf("failed to release session spot: %w", err)
		}

		className := ""
		if session.ClassType != nil {
			className = session.ClassType.Name
		}
		date := tool.FormatDate(session.Date)
		trainerID := session.TrainerID
		notifyFns = append(notifyFns,
			func() { s.notify.BookingCancelled(ctx, memberID, className, date) },
			func() { s.notify.BookingCancelledByMember(ctx, trainerID, className, date) },
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.BookingsCancelled.Inc()
	logctx.FromCtx(ctx, s.log).Infow("booking cancelled by member",
		"booking_id", bookingID, "member_id", memberID)
	for _, fn := range notifyFns {
		fn()
	}
	return nil
}
