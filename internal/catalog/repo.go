package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the catalog tables. Every
// method dispatches on kind; callers must pass a valid enums.ProductKind.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindSummary(ctx context.Context, kind enums.ProductKind, id uint) (*ProductSummary, error)
	FindNamesByIDs(ctx context.Context, kind enums.ProductKind, ids []uint) (map[uint]string, error)
	List(ctx context.Context, kind enums.ProductKind) ([]ProductView, error)
	FindByID(ctx context.Context, kind enums.ProductKind, id uint) (*ProductView, error)
	Create(ctx context.Context, kind enums.ProductKind, input ProductInput) (*ProductView, error)
	Update(ctx context.Context, kind enums.ProductKind, id uint, input ProductInput) (*ProductView, error)
	Delete(ctx context.Context, kind enums.ProductKind, id uint) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindSummary(ctx context.Context, kind enums.ProductKind, id uint) (*ProductSummary, error) {
	var summary ProductSummary
	err := r.db.WithContext(ctx).
		Table(kind.String()).
		Select("id, name, price").
		Where("id = ?", id).
		Take(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repository) FindNamesByIDs(ctx context.Context, kind enums.ProductKind, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []struct {
		ID   uint
		Name string
	}
	err := r.db.WithContext(ctx).
		Table(kind.String()).
		Select("id, name").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func (r *repository) List(ctx context.Context, kind enums.ProductKind) ([]ProductView, error) {
	views := []ProductView{}
	err := r.db.WithContext(ctx).
		Table(kind.String()).
		Order("id ASC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) FindByID(ctx context.Context, kind enums.ProductKind, id uint) (*ProductView, error) {
	var view ProductView
	err := r.db.WithContext(ctx).
		Table(kind.String()).
		Where("id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *repository) Create(ctx context.Context, kind enums.ProductKind, input ProductInput) (*ProductView, error) {
	switch kind {
	case enums.ProductKindVehicles:
		row := models.Vehicle{
			Name:        input.Name,
			Price:       input.Price,
			Image:       input.Image,
			Description: deref(input.Description),
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, kind, row.ID)

	case enums.ProductKindAccessories:
		row := models.Accessory{
			Name:        input.Name,
			Price:       input.Price,
			Image:       input.Image,
			Description: deref(input.Description),
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, kind, row.ID)

	case enums.ProductKindMemberships:
		row := models.Membership{
			Name:        input.Name,
			Price:       input.Price,
			Image:       input.Image,
			Description: input.Description,
			Slug:        input.Slug,
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, kind, row.ID)

	default:
		return nil, fmt.Errorf("unsupported product kind %q", kind)
	}
}

func (r *repository) Update(ctx context.Context, kind enums.ProductKind, id uint, input ProductInput) (*ProductView, error) {
	updates := map[string]any{
		"name":       input.Name,
		"price":      input.Price,
		"image":      input.Image,
		"updated_at": time.Now().UTC(),
	}
	if kind == enums.ProductKindMemberships {
		updates["description"] = input.Description
		if input.Slug != nil {
			updates["slug"] = input.Slug
		}
	} else {
		updates["description"] = deref(input.Description)
	}

	result := r.db.WithContext(ctx).
		Table(kind.String()).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, kind, id)
}

func (r *repository) Delete(ctx context.Context, kind enums.ProductKind, id uint) error {
	var result *gorm.DB
	switch kind {
	case enums.ProductKindVehicles:
		result = r.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	case enums.ProductKindAccessories:
		result = r.db.WithContext(ctx).Delete(&models.Accessory{}, id)
	case enums.ProductKindMemberships:
		result = r.db.WithContext(ctx).Delete(&models.Membership{}, id)
	default:
		return fmt.Errorf("unsupported product kind %q", kind)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
