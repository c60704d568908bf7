package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kassem10h/Gym-Poject/internal/app/service/payment"
	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Service manages the membership ledger. The plan catalog comes from config,
// never from the database. Renewals chain: buying while a membership is still
// unexpired starts the new window the day after the current one ends.
type Service struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	cfg     *config.Config
	gateway payment.Gateway
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *config.Config, gateway payment.Gateway) *Service {
	return &Service{db: db, log: log, cfg: cfg, gateway: gateway}
}

// Plans returns the configured plan catalog.
func (s *Service) Plans() []*types.MembershipPlan {
	return s.cfg.MembershipPlans
}

type MembershipView struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	IsActive      bool   `json:"is_active"`
	Expired       bool   `json:"expired"`
	DaysRemaining int    `json:"days_remaining"`
}

func toMembershipView(m *models.Membership, today time.Time) *MembershipView {
	return &MembershipView{
		ID:            m.ID,
		Type:          m.Type,
		StartDate:     tool.FormatDate(m.StartDate),
		EndDate:       tool.FormatDate(m.EndDate),
		IsActive:      m.IsActive,
		Expired:       m.ExpiredAt(today),
		DaysRemaining: m.DaysRemaining(today),
	}
}

// Current returns the user's active membership, or nil when none exists.
func (s *Service) Current(ctx context.Context, userID string) (*MembershipView, error) {
	var m models.Membership
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return toMembershipView(&m, time.Now()), nil
}

// History lists all memberships of the user, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*MembershipView, error) {
	var rows []*models.Membership
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	today := time.Now()
	views := make([]*MembershipView, 0, len(rows))
	for _, m := range rows {
		views = append(views, toMembershipView(m, today))
	}
	return views, nil
}

// nextWindowStart decides where a renewal window opens: the day after the
// current end date while it is still unexpired, otherwise today.
func nextWindowStart(current *models.Membership, today time.Time) time.Time {
	if current != nil && !current.ExpiredAt(today) {
		return time.Time(current.EndDate).AddDate(0, 0, 1)
	}
	return today
}

type PurchaseRequest struct {
	PlanType      string              `json:"plan_type"`
	PaymentMethod types.PaymentMethod `json:"payment_method"`
	CardDetails   types.CardDetails   `json:"card_details"`
}

// Purchase charges the plan price and writes the new membership window. When
// a still-unexpired membership exists, the new window starts the day after
// its end date; otherwise it starts today. The previous row is deactivated in
// the same transaction that creates the new one.
func (s *Service) Purchase(ctx context.Context, userID string, req *PurchaseRequest) (*MembershipView, error) {
	plan := s.cfg.GetMembershipPlan(req.PlanType)
	if plan == nil {
		return nil, apperr.Validation("unknown membership plan %q", req.PlanType)
	}
	if req.PaymentMethod == "" {
		return nil, apperr.Validation("payment_method is required")
	}

	if err := s.gateway.Charge(ctx, req.PaymentMethod, req.CardDetails, plan.PriceCents); err != nil {
		return nil, apperr.Payment("payment failed, please check your payment details")
	}

	var created *models.Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		today := time.Now()
		start := today

		var current models.Membership
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND is_active = ?", userID, true).
			First(&current).Error
		switch {
		case err == nil:
			start = nextWindowStart(&current, today)
			if err := tx.Model(&current).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate membership: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First membership, starts today.
		default:
			return fmt.Errorf("failed to load membership: %w", err)
		}

		end := start.AddDate(0, 0, plan.DurationDays)
		created = &models.Membership{
			ID:        tool.GenerateUUIDV7(),
			UserID:    userID,
			Type:      plan.Type,
			StartDate: datatypes.Date(start),
			EndDate:   datatypes.Date(end),
			IsActive:  true,
		}
		if err := tx.Create(created).Error; err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("membership purchased",
		"user_id", userID, "plan", plan.Type, "price_cents", plan.PriceCents)
	return toMembershipView(created, time.Now()), nil
}

// assertCancellable rejects cancellation of a window that has already closed;
// such a row only renews or gets replaced by a new purchase.
func assertCancellable(m *models.Membership, today time.Time) error {
	if m.ExpiredAt(today) {
		return apperr.Validation("membership has already expired")
	}
	return nil
}

// Cancel clears is_active on the current unexpired membership. Access
// persists until end_date; no refund is issued.
func (s *Service) Cancel(ctx context.Context, userID string) error {
	var current models.Membership
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("active membership")
	}
	if err != nil {
		return fmt.Errorf("failed to load membership: %w", err)
	}
	if err := assertCancellable(&current, time.Now()); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(&current).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to cancel membership: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("membership cancelled", "user_id", userID)
	return nil
}
