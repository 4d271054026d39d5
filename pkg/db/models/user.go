package models

import (
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
)

// User is a storefront account. Registration and verification are handled by
// the identity collaborator; the order workflow only reads these rows.
type User struct {
	ID           uint           `gorm:"column:id;primaryKey"`
	Email        string         `gorm:"column:email;not null;unique"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Name         string         `gorm:"column:name;not null"`
	Role         enums.UserRole `gorm:"column:role;type:user_role;not null;default:'customer'"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time     `gorm:"column:last_login_at"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
