package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes catalog operations with domain error mapping.
type Service interface {
	Lookup(ctx context.Context, kind enums.ProductKind, id uint) (*ProductSummary, error)
	ResolveNames(ctx context.Context, kind enums.ProductKind, ids []uint) (map[uint]string, error)
	List(ctx context.Context, kind enums.ProductKind) ([]ProductView, error)
	Get(ctx context.Context, kind enums.ProductKind, id uint) (*ProductView, error)
	Create(ctx context.Context, kind enums.ProductKind, input ProductInput) (*ProductView, error)
	Update(ctx context.Context, kind enums.ProductKind, id uint, input ProductInput) (*ProductView, error)
	Delete(ctx context.Context, kind enums.ProductKind, id uint) error
}

type service struct {
	repo Repository
}

// NewService builds a catalog service on top of the repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Lookup(ctx context.Context, kind enums.ProductKind, id uint) (*ProductSummary, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	summary, err := s.repo.FindSummary(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id, "kind": kind.String()})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return summary, nil
}

func (s *service) ResolveNames(ctx context.Context, kind enums.ProductKind, ids []uint) (map[uint]string, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	names, err := s.repo.FindNamesByIDs(ctx, kind, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve product names")
	}
	return names, nil
}

func (s *service) List(ctx context.Context, kind enums.ProductKind) ([]ProductView, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	views, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return views, nil
}

func (s *service) Get(ctx context.Context, kind enums.ProductKind, id uint) (*ProductView, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	view, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id, "kind": kind.String()})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return view, nil
}

func (s *service) Create(ctx context.Context, kind enums.ProductKind, input ProductInput) (*ProductView, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	view, err := s.repo.Create(ctx, kind, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return view, nil
}

func (s *service) Update(ctx context.Context, kind enums.ProductKind, id uint, input ProductInput) (*ProductView, error) {
	if !kind.IsValid() {
		return nil, invalidKindError(kind)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	view, err := s.repo.Update(ctx, kind, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id, "kind": kind.String()})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return view, nil
}

func (s *service) Delete(ctx context.Context, kind enums.ProductKind, id uint) error {
	if !kind.IsValid() {
		return invalidKindError(kind)
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id, "kind": kind.String()})
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price must not be negative")
	}
	return nil
}

func invalidKindError(kind enums.ProductKind) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid product kind").
		WithDetails(map[string]any{"kind": kind.String()})
}
