package orders

import (
	"context"
	"fmt"

	"github.com/motorhaus-io/motorhaus-backend/internal/catalog"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// deliveryFee is the flat per-order surcharge applied whenever the cart has a
// positive subtotal.
var deliveryFee = decimal.NewFromInt(5)

type catalogLookup interface {
	Lookup(ctx context.Context, kind enums.ProductKind, id uint) (*catalog.ProductSummary, error)
}

// PricingEngine re-prices client carts from the trusted catalogs.
type PricingEngine struct {
	catalog catalogLookup
}

// NewPricingEngine builds a pricing engine over the provided catalog lookup.
func NewPricingEngine(lookup catalogLookup) (*PricingEngine, error) {
	if lookup == nil {
		return nil, fmt.Errorf("catalog lookup required")
	}
	return &PricingEngine{catalog: lookup}, nil
}

// Price resolves every cart line against the catalog and computes the order
// totals. Any unresolved line fails the whole cart; no partial result is
// produced. Lookups run concurrently but the output preserves cart order.
func (p *PricingEngine) Price(ctx context.Context, lines []CartLine) (*PricedCart, error) {
	normalized, err := normalizeCart(lines)
	if err != nil {
		return nil, err
	}

	priced := make([]PricedLine, len(normalized))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, line := range normalized {
		i, line := i, line
		group.Go(func() error {
			summary, err := p.catalog.Lookup(groupCtx, line.SourceKind, line.ProductID)
			if err != nil {
				return mapLookupError(err, line)
			}
			unit := summary.Price
			priced[i] = PricedLine{
				ProductID:  line.ProductID,
				SourceKind: line.SourceKind,
				Name:       summary.Name,
				Quantity:   line.Quantity,
				UnitPrice:  unit,
				Extended:   unit.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, line := range priced {
		subtotal = subtotal.Add(line.Extended)
	}
	fee := decimal.Zero
	if subtotal.IsPositive() {
		fee = deliveryFee
	}

	return &PricedCart{
		Lines:       priced,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}, nil
}

// normalizeCart validates quantities, forces membership lines to quantity 1,
// and merges duplicate (product, kind) pairs while preserving first-seen
// order: duplicates add quantity for physical goods and are a no-op for
// memberships.
func normalizeCart(lines []CartLine) ([]CartLine, error) {
	type key struct {
		id   uint
		kind enums.ProductKind
	}

	normalized := make([]CartLine, 0, len(lines))
	index := make(map[key]int, len(lines))

	for _, line := range lines {
		if line.ProductID == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart line product id required")
		}
		if line.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart line quantity must be at least 1").
				WithDetails(map[string]any{"product_id": line.ProductID, "kind": line.SourceKind.String()})
		}
		if line.SourceKind == enums.ProductKindMemberships {
			line.Quantity = 1
		}

		k := key{id: line.ProductID, kind: line.SourceKind}
		if at, ok := index[k]; ok {
			if line.SourceKind != enums.ProductKindMemberships {
				normalized[at].Quantity += line.Quantity
			}
			continue
		}
		index[k] = len(normalized)
		normalized = append(normalized, line)
	}
	return normalized, nil
}

// mapLookupError turns catalog failures into the pricing error surface: a
// missing or invalid-kind product becomes a product-unavailable validation
// failure naming the line; storage failures propagate untouched and abort the
// whole cart.
func mapLookupError(err error, line CartLine) error {
	typed := pkgerrors.As(err)
	if typed != nil && (typed.Code() == pkgerrors.CodeNotFound || typed.Code() == pkgerrors.CodeValidation) {
		return pkgerrors.New(pkgerrors.CodeValidation, "product unavailable").
			WithDetails(map[string]any{"product_id": line.ProductID, "kind": line.SourceKind.String()})
	}
	return err
}
