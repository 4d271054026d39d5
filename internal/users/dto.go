package users

import (
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
)

// UserView is the account shape exposed over HTTP. The password hash never
// leaves this package.
type UserView struct {
	ID          uint           `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Role        enums.UserRole `json:"role"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// FromModel converts a persisted user into its HTTP view.
func FromModel(user *models.User) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// DeliveryInfo carries the delivery fields collected during checkout.
type DeliveryInfo struct {
	Name    string
	Address string
	City    string
	Country string
	Phone   *string
}
