package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// User is any account: member, trainer or admin. Role decides which route
// groups the token opens.
type User struct {
	ID           string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName     string     `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Phone        string     `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Role         types.Role `gorm:"column:role;type:varchar(20);not null;index" json:"role"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// SetPassword hashes and stores the raw password.
func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the raw password against the stored hash.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}
