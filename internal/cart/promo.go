package cart

import (
	"strings"

	"github.com/foodapp-labs/foodapp-core/pkg/money"
	"github.com/shopspring/decimal"
)

// PromoRule maps a recognized code to its discount behavior. Exactly one of
// PercentBps or FlatCents is non-zero.
type PromoRule struct {
	Code       string
	PercentBps int
	FlatCents  int
}

// DiscountFor computes the absolute discount for the given subtotal.
// Percentage rules are evaluated against the subtotal passed in, so the
// result is a snapshot of the subtotal at application time.
func (r PromoRule) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if r.FlatCents > 0 {
		return money.FromCents(r.FlatCents)
	}
	return money.Round2(subtotal.Mul(money.FromBps(r.PercentBps)))
}

// Description returns the shopper-facing confirmation message.
func (r PromoRule) Description() string {
	if r.FlatCents > 0 {
		return "You saved $" + money.Format(money.FromCents(r.FlatCents)) + "."
	}
	return "You saved " + money.FromBps(r.PercentBps).Shift(2).String() + "%."
}

// PromoResolver looks up a promo rule by its normalized code.
type PromoResolver interface {
	Resolve(code string) (*PromoRule, bool)
}

type promoResolverFunc func(code string) (*PromoRule, bool)

func (fn promoResolverFunc) Resolve(code string) (*PromoRule, bool) {
	return fn(code)
}

// NoopResolver returns a resolver that never recognizes any code.
func NoopResolver() PromoResolver {
	return promoResolverFunc(func(string) (*PromoRule, bool) {
		return nil, false
	})
}

// StandardPromos is the fixed table of recognized promo codes:
// SAVE10 takes 10% off the subtotal, FREE5 takes a flat 5.00 off.
func StandardPromos() PromoResolver {
	table := map[string]PromoRule{
		"SAVE10": {Code: "SAVE10", PercentBps: 1000},
		"FREE5":  {Code: "FREE5", FlatCents: 500},
	}
	return promoResolverFunc(func(code string) (*PromoRule, bool) {
		rule, ok := table[code]
		if !ok {
			return nil, false
		}
		return &rule, true
	})
}

// NormalizeCode applies the promo entry normalization: surrounding space
// stripped, uppercased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
