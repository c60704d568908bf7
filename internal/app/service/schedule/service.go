package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Service is the session registry: trainer-authored class instances and the
// class-type reference data, with overlap protection on writes.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type SessionRequest struct {
	ClassTypeID string `json:"class_type_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	PriceCents  int64  `json:"price_cents"`
	MaxCapacity int    `json:"max_capacity"`
}

type SessionView struct {
	ID              string `json:"id"`
	ClassType       string `json:"class_type"`
	ClassTypeID     string `json:"class_type_id"`
	TrainerName     string `json:"trainer_name,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	PriceCents      int64  `json:"price_cents"`
	MaxCapacity     int    `json:"max_capacity"`
	CurrentBookings int    `json:"current_bookings"`
	SpotsRemaining  int    `json:"spots_remaining"`
	IsFull          bool   `json:"is_full"`
}

func toSessionView(s *models.Session) *SessionView {
	v := &SessionView{
		ID:              s.ID,
		ClassTypeID:     s.ClassTypeID,
		Date:            tool.FormatDate(s.Date),
		StartTime:       tool.FormatClock(s.StartTime),
		EndTime:         tool.FormatClock(s.EndTime),
		PriceCents:      s.PriceCents,
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		SpotsRemaining:  s.SpotsRemaining(),
		IsFull:          s.IsFull(),
	}
	if s.ClassType != nil {
		v.ClassType = s.ClassType.Name
	}
	if s.Trainer != nil {
		v.TrainerName = s.Trainer.FullName()
	}
	return v
}

// ListTrainerSessions returns the trainer's active sessions, newest first.
func (s *Service) ListTrainerSessions(ctx context.Context, trainerID string) ([]*SessionView, error) {
	var sessions []*models.Session
	err := s.db.WithContext(ctx).
		Preload("ClassType").
		Where("trainer_id = ? AND is_active = ?", trainerID, true).
		Order("date desc, start_time desc").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return lo.Map(sessions, func(m *models.Session, _ int) *SessionView { return toSessionView(m) }), nil
}

type parsedWindow struct {
	date  datatypes.Date
	start datatypes.Time
	end   datatypes.Time
}

func (s *Service) parseWindow(date, startTime, endTime string) (*parsedWindow, error) {
	d, err := tool.ParseDate(date)
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}
	start, err := tool.ParseClock(startTime)
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}
	end, err := tool.ParseClock(endTime)
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}
	if start >= end {
		return nil, apperr.Validation("end time must be after start time")
	}
	if time.Time(d).Before(time.Time(tool.Today())) {
		return nil, apperr.Validation("cannot schedule a session in the past")
	}
	return &parsedWindow{date: d, start: start, end: end}, nil
}

// CreateSession validates the request and creates a session for the trainer,
// rejecting any overlap with their other active sessions on that date.
func (s *Service) CreateSession(ctx context.Context, trainerID string, req *SessionRequest) (*SessionView, error) {
	w, err := s.parseWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if req.PriceCents <= 0 {
		return nil, apperr.Validation("price must be greater than 0")
	}
	if req.MaxCapacity <= 0 {
		return nil, apperr.Validation("max capacity must be greater than 0")
	}

	var classType models.ClassType
	if err := s.db.WithContext(ctx).First(&classType, "id = ?", req.ClassTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class type")
		}
		return nil, fmt.Errorf("failed to load class type: %w", err)
	}

	session := &models.Session{
		ID:          tool.GenerateUUIDV7(),
		TrainerID:   trainerID,
		ClassTypeID: classType.ID,
		Date:        w.date,
		StartTime:   w.start,
		EndTime:     w.end,
		PriceCents:  req.PriceCents,
		MaxCapacity: req.MaxCapacity,
		IsActive:    true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.rejectConflict(ctx, tx, trainerID, w.date, w.start, w.end, ""); err != nil {
			return err
		}
		return tx.Create(session).Error
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("session created",
		"session_id", session.ID, "trainer_id", trainerID, "date", req.Date)
	session.ClassType = &classType
	return toSessionView(session), nil
}

// SessionUpdate is a partial patch. Nil fields stay untouched; a field that
// is present gets validated, so an explicit zero is rejected rather than
// silently ignored.
type SessionUpdate struct {
	ClassTypeID *string `json:"class_type_id"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	PriceCents  *int64  `json:"price_cents"`
	MaxCapacity *int    `json:"max_capacity"`
}

// applySessionUpdate patches the present fields onto the session in memory.
// Class type resolution is left to the caller.
func applySessionUpdate(session *models.Session, upd *SessionUpdate) error {
	if upd.Date != nil {
		d, err := tool.ParseDate(*upd.Date)
		if err != nil {
			return apperr.Validation("%v", err)
		}
		if time.Time(d).Before(time.Time(tool.Today())) {
			return apperr.Validation("cannot set a date in the past")
		}
		session.Date = d
	}
	if upd.StartTime != nil {
		start, err := tool.ParseClock(*upd.StartTime)
		if err != nil {
			return apperr.Validation("%v", err)
		}
		session.StartTime = start
	}
	if upd.EndTime != nil {
		end, err := tool.ParseClock(*upd.EndTime)
		if err != nil {
			return apperr.Validation("%v", err)
		}
		session.EndTime = end
	}
	if session.StartTime >= session.EndTime {
		return apperr.Validation("end time must be after start time")
	}
	if upd.PriceCents != nil {
		if *upd.PriceCents <= 0 {
			return apperr.Validation("price must be greater than 0")
		}
		session.PriceCents = *upd.PriceCents
	}
	if upd.MaxCapacity != nil {
		if *upd.MaxCapacity <= 0 {
			return apperr.Validation("max capacity must be greater than 0")
		}
		session.MaxCapacity = *upd.MaxCapacity
	}
	return nil
}

// UpdateSession mutates an owned session. Sessions with bookings are frozen.
func (s *Service) UpdateSession(ctx context.Context, trainerID, sessionID string, req *SessionUpdate) (*SessionView, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Preload("ClassType").First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.TrainerID != trainerID {
		return nil, apperr.Forbidden("not your session")
	}
	if session.CurrentBookings > 0 {
		return nil, apperr.Validation("cannot update a session with existing bookings")
	}

	if err := applySessionUpdate(&session, req); err != nil {
		return nil, err
	}
	if req.ClassTypeID != nil && *req.ClassTypeID != session.ClassTypeID {
		var classType models.ClassType
		if err := s.db.WithContext(ctx).First(&classType, "id = ?", *req.ClassTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("class type")
			}
			return nil, fmt.Errorf("failed to load class type: %w", err)
		}
		session.ClassTypeID = classType.ID
		session.ClassType = &classType
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.rejectConflict(ctx, tx, trainerID, session.Date, session.StartTime, session.EndTime, session.ID); err != nil {
			return err
		}
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("session updated", "session_id", session.ID, "trainer_id", trainerID)
	return toSessionView(&session), nil
}

// DeleteSession soft-deletes an owned session without bookings.
func (s *Service) DeleteSession(ctx context.Context, trainerID, sessionID string) error {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("session")
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session.TrainerID != trainerID {
		return apperr.Forbidden("not your session")
	}
	if session.CurrentBookings > 0 {
		return apperr.Validation("cannot delete a session with existing bookings")
	}

	if err := s.db.WithContext(ctx).Model(&session).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("session deactivated", "session_id", session.ID, "trainer_id", trainerID)
	return nil
}

type SessionBookingView struct {
	BookingID   string `json:"booking_id"`
	MemberID    string `json:"member_id"`
	MemberName  string `json:"member_name"`
	MemberEmail string `json:"member_email"`
	BookedAt    string `json:"booked_at"`
}

// SessionBookings returns the confirmed bookings of an owned session.
func (s *Service) SessionBookings(ctx context.Context, trainerID, sessionID string) (*SessionView, []*SessionBookingView, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Preload("ClassType").First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("session")
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.TrainerID != trainerID {
		return nil, nil, apperr.Forbidden("not your session")
	}

	var bookings []*models.Booking
	err := s.db.WithContext(ctx).
		Preload("Member").
		Where("session_id = ? AND status = ?", sessionID, types.BookingStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	views := lo.Map(bookings, func(b *models.Booking, _ int) *SessionBookingView {
		v := &SessionBookingView{BookingID: b.ID, MemberID: b.MemberID, BookedAt: b.CreatedAt.Format(time.RFC3339)}
		if b.Member != nil {
			v.MemberName = b.Member.FullName()
			v.MemberEmail = b.Member.Email
		}
		return v
	})
	return toSessionView(&session), views, nil
}

type AvailableFilter struct {
	ClassTypeID string
	DateFrom    string
	DateTo      string
}

// ListAvailable returns sessions a member can still book: active, in the
// future, not full, and not already booked or carted by the member.
func (s *Service) ListAvailable(ctx context.Context, memberID string, filter *AvailableFilter) ([]*SessionView, error) {
	q := s.db.WithContext(ctx).
		Preload("ClassType").Preload("Trainer").
		Where("is_active = ? AND date >= ?", true, tool.Today())

	if filter.ClassTypeID != "" {
		q = q.Where("class_type_id = ?", filter.ClassTypeID)
	}
	if filter.DateFrom != "" {
		from, err := tool.ParseDate(filter.DateFrom)
		if err != nil {
			return nil, apperr.Validation("%v", err)
		}
		q = q.Where("date >= ?", from)
	}
	if filter.DateTo != "" {
		to, err := tool.ParseDate(filter.DateTo)
		if err != nil {
			return nil, apperr.Validation("%v", err)
		}
		q = q.Where("date <= ?", to)
	}

	var sessions []*models.Session
	if err := q.Order("date asc, start_time asc").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	booked, carted, err := s.memberCommitments(ctx, memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]*SessionView, 0, len(sessions))
	for _, session := range sessions {
		if booked[session.ID] || carted[session.ID] {
			continue
		}
		if !session.Bookable(now) {
			continue
		}
		out = append(out, toSessionView(session))
	}
	return out, nil
}

// memberCommitments returns the session ids the member already holds, either
// as a confirmed booking or staged in their session cart.
func (s *Service) memberCommitments(ctx context.Context, memberID string) (booked, carted map[string]bool, err error) {
	var bookings []*models.Booking
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, types.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	booked = lo.SliceToMap(bookings, func(b *models.Booking) (string, bool) { return b.SessionID, true })

	carted = map[string]bool{}
	var cart models.SessionCart
	err = s.db.WithContext(ctx).Where("user_id = ?", memberID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booked, carted, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session cart: %w", err)
	}
	var items []*models.SessionCartItem
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load session cart items: %w", err)
	}
	carted = lo.SliceToMap(items, func(i *models.SessionCartItem) (string, bool) { return i.SessionID, true })
	return booked, carted, nil
}
