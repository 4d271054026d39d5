package users

import (
	"context"

	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"gorm.io/gorm"
)

// AddressRepository persists delivery addresses captured at checkout.
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository constructs an address repo bound to the provided DB.
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// WithTx rebinds the repository to an in-flight transaction.
func (r *AddressRepository) WithTx(tx *gorm.DB) *AddressRepository {
	if tx == nil {
		return r
	}
	return &AddressRepository{db: tx}
}

// Create inserts a delivery address and returns the persisted row.
func (r *AddressRepository) Create(ctx context.Context, userID uint, info DeliveryInfo) (*models.DeliveryAddress, error) {
	address := &models.DeliveryAddress{
		UserID:  userID,
		Name:    info.Name,
		Address: info.Address,
		City:    info.City,
		Country: info.Country,
		Phone:   info.Phone,
	}
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// ListByUser returns the addresses recorded for a user, most recent first.
func (r *AddressRepository) ListByUser(ctx context.Context, userID uint) ([]models.DeliveryAddress, error) {
	var addresses []models.DeliveryAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}
