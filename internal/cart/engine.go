package cart

import (
	"fmt"
	"strings"

	"github.com/foodapp-labs/foodapp-core/pkg/config"
	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/money"
	"github.com/shopspring/decimal"
)

// EngineParams groups dependencies for the pricing engine.
type EngineParams struct {
	Pricing config.PricingConfig
	Promos  PromoResolver
	Seed    []LineItem
}

// Engine owns one page session's cart state and derives pricing from it.
// It assumes a single logical actor; callers serialize access.
type Engine struct {
	items         []LineItem
	promoCode     string
	promoDiscount decimal.Decimal

	minQty      int
	maxQty      int
	codeMinLen  int
	codeMaxLen  int
	deliveryFee decimal.Decimal
	taxRate     decimal.Decimal
	promos      PromoResolver
}

// NewEngine builds a cart engine seeded with the provided line items.
func NewEngine(params EngineParams) (*Engine, error) {
	if err := validatePricing(params.Pricing); err != nil {
		return nil, err
	}
	promos := params.Promos
	if promos == nil {
		promos = NoopResolver()
	}

	e := &Engine{
		promoDiscount: decimal.Zero,
		minQty:        params.Pricing.MinQuantity,
		maxQty:        params.Pricing.MaxQuantity,
		codeMinLen:    params.Pricing.PromoCodeMinLen,
		codeMaxLen:    params.Pricing.PromoCodeMaxLen,
		deliveryFee:   money.FromCents(params.Pricing.DeliveryFeeCents),
		taxRate:       money.FromBps(params.Pricing.TaxRateBps),
		promos:        promos,
	}

	for _, item := range params.Seed {
		if _, err := e.AddItem(item); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("seed item %q", item.ID))
		}
	}
	return e, nil
}

func validatePricing(p config.PricingConfig) error {
	if p.MinQuantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "min quantity must be at least 1")
	}
	if p.MaxQuantity < p.MinQuantity {
		return pkgerrors.New(pkgerrors.CodeValidation, "max quantity below min quantity")
	}
	if p.DeliveryFeeCents < 0 || p.TaxRateBps < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "pricing amounts must be non-negative")
	}
	return nil
}

// Items returns the cart lines in insertion order.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// IsEmpty reports whether the cart has no line items.
func (e *Engine) IsEmpty() bool {
	return len(e.items) == 0
}

// PromoCode returns the currently applied promo code, or "".
func (e *Engine) PromoCode() string {
	return e.promoCode
}

// AddItem inserts a line item, merging quantities when the id already
// exists. The resulting quantity is clamped to the configured bounds.
func (e *Engine) AddItem(item LineItem) ([]ItemWarning, error) {
	if strings.TrimSpace(item.ID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	if item.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must be non-negative")
	}
	if item.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	for i := range e.items {
		if e.items[i].ID == item.ID {
			merged, warnings := e.clampQuantity(item.ID, e.items[i].Quantity+item.Quantity)
			e.items[i].Quantity = merged
			return warnings, nil
		}
	}

	qty, warnings := e.clampQuantity(item.ID, item.Quantity)
	item.Quantity = qty
	item.Customizations = append([]string(nil), item.Customizations...)
	e.items = append(e.items, item)
	return warnings, nil
}

// ChangeQuantity sets the quantity of the identified line. A target of zero
// or below removes the line entirely; an unknown id is a silent no-op.
func (e *Engine) ChangeQuantity(itemID string, newQuantity int) []ItemWarning {
	idx := e.indexOf(itemID)
	if idx < 0 {
		return nil
	}

	if newQuantity <= 0 {
		e.removeAt(idx)
		return []ItemWarning{{
			ItemID:  itemID,
			Type:    enums.CartItemWarningTypeLineRemoved,
			Message: "quantity reached zero, item removed",
		}}
	}

	qty, warnings := e.clampQuantity(itemID, newQuantity)
	e.items[idx].Quantity = qty
	return warnings
}

// RemoveItem drops the identified line; no-op when absent.
func (e *Engine) RemoveItem(itemID string) {
	idx := e.indexOf(itemID)
	if idx < 0 {
		return
	}
	e.removeAt(idx)
}

// AppliedPromo reports a successful promo application.
type AppliedPromo struct {
	Code     string
	Discount decimal.Decimal
	Message  string
}

// ApplyPromoCode evaluates the code against the promo table. On a match the
// discount is computed from the subtotal as of now and frozen; later cart
// mutations do not re-derive it. On any miss the discount resets to zero and
// an invalid-code error is returned. An empty cart rejects every code, so a
// discount can never exist without items to discount. Cart contents are
// never affected.
func (e *Engine) ApplyPromoCode(code string) (*AppliedPromo, error) {
	normalized := NormalizeCode(code)
	e.promoCode = normalized
	e.promoDiscount = decimal.Zero

	if e.IsEmpty() {
		e.promoCode = ""
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if len(normalized) < e.codeMinLen || len(normalized) > e.codeMaxLen {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid promo code")
	}

	rule, ok := e.promos.Resolve(normalized)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid promo code")
	}

	e.promoDiscount = rule.DiscountFor(e.subtotal())
	return &AppliedPromo{
		Code:     rule.Code,
		Discount: e.promoDiscount,
		Message:  "Promo code " + rule.Code + " applied! " + rule.Description(),
	}, nil
}

// ClearPromo resets the promo state, mirroring the shopper editing the code.
func (e *Engine) ClearPromo() {
	e.promoCode = ""
	e.promoDiscount = decimal.Zero
}

// Totals derives the pricing snapshot from current state. It is pure with
// respect to cart state: calling it any number of times changes nothing.
func (e *Engine) Totals() Totals {
	subtotal := e.subtotal()

	deliveryFee := decimal.Zero
	taxes := decimal.Zero
	if !e.IsEmpty() {
		deliveryFee = e.deliveryFee
		taxes = money.Round2(subtotal.Mul(e.taxRate))
	}

	total := subtotal.Sub(e.promoDiscount).Add(deliveryFee).Add(taxes)

	return Totals{
		Subtotal:      subtotal,
		PromoDiscount: e.promoDiscount,
		DeliveryFee:   deliveryFee,
		Taxes:         taxes,
		Total:         money.Round2(total),
	}
}

func (e *Engine) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range e.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func (e *Engine) indexOf(itemID string) int {
	for i := range e.items {
		if e.items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// removeAt drops the line while preserving insertion order. A cart that
// empties out also sheds its promo state so a stale discount can never
// produce a negative total.
func (e *Engine) removeAt(idx int) {
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	if e.IsEmpty() {
		e.ClearPromo()
	}
}

func (e *Engine) clampQuantity(itemID string, requested int) (int, []ItemWarning) {
	normalized := requested
	var warnings []ItemWarning

	if normalized < e.minQty {
		warnings = append(warnings, ItemWarning{
			ItemID:  itemID,
			Type:    enums.CartItemWarningTypeClampedToMin,
			Message: fmt.Sprintf("quantity raised to minimum (%d)", e.minQty),
		})
		normalized = e.minQty
	}

	if normalized > e.maxQty {
		warnings = append(warnings, ItemWarning{
			ItemID:  itemID,
			Type:    enums.CartItemWarningTypeClampedToMax,
			Message: fmt.Sprintf("quantity reduced to maximum (%d)", e.maxQty),
		})
		normalized = e.maxQty
	}

	return normalized, warnings
}
