package cart

import (
	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart. Customizations are free-text
// and display-only; they never participate in pricing.
type LineItem struct {
	ID             string
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       int
	Customizations []string
}

// LineTotal returns unit price times quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ItemWarning records a normalization applied to a requested mutation.
type ItemWarning struct {
	ItemID  string
	Type    enums.CartItemWarningType
	Message string
}

// Totals is the derived pricing snapshot for the current cart state.
type Totals struct {
	Subtotal      decimal.Decimal
	PromoDiscount decimal.Decimal
	DeliveryFee   decimal.Decimal
	Taxes         decimal.Decimal
	Total         decimal.Decimal
}
