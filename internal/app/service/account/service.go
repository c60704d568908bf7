package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/authtoken"
	"github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// Service handles registration and login. Self-registration is open for
// members and trainers; admin accounts are provisioned out of band.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	cfg *config.Config
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *config.Config) *Service {
	return &Service{db: db, log: log, cfg: cfg}
}

type RegisterRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Role      types.Role `json:"role"`
}

type UserView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Role      types.Role `json:"role"`
}

func toUserView(u *models.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

// Register creates a member or trainer account.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserView, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validation("invalid email address")
	}
	if len(req.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, apperr.Validation("first_name and last_name are required")
	}
	role := req.Role
	if role == "" {
		role = types.RoleMember
	}
	if role != types.RoleMember && role != types.RoleTrainer {
		return nil, apperr.Validation("role must be %q or %q", types.RoleMember, types.RoleTrainer)
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := &models.User{
		ID:        tool.GenerateUUIDV7(),
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Role:      role,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("user registered", "user_id", user.ID, "role", user.Role)
	return toUserView(user), nil
}

type LoginResult struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// Login verifies credentials and issues a JWT.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("account is disabled")
	}
	if !user.CheckPassword(password) {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	token, err := authtoken.Sign(s.cfg.Auth.JWTSecret, user.ID, user.Role, s.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResult{Token: token, User: toUserView(&user)}, nil
}

// Profile returns the authenticated user's account details.
func (s *Service) Profile(ctx context.Context, userID string) (*UserView, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return toUserView(&user), nil
}
