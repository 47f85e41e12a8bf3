package cart

import (
	"testing"

	"github.com/foodapp-labs/foodapp-core/pkg/config"
	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/shopspring/decimal"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		DeliveryFeeCents: 500,
		TaxRateBps:       800,
		MinQuantity:      1,
		MaxQuantity:      99,
		PromoCodeMinLen:  5,
		PromoCodeMaxLen:  6,
	}
}

func seedItems() []LineItem {
	return []LineItem{
		{ID: "pizza1", Name: "Margherita Pizza", UnitPrice: dec("12.99"), Quantity: 1, Customizations: []string{"Large", "Thin Crust"}},
		{ID: "burger1", Name: "Classic Cheeseburger", UnitPrice: dec("8.50"), Quantity: 2, Customizations: []string{"Extra Pickles"}},
		{ID: "soda1", Name: "Cola Can", UnitPrice: dec("1.50"), Quantity: 4},
	}
}

func newTestEngine(t *testing.T, seed []LineItem) *Engine {
	t.Helper()
	e, err := NewEngine(EngineParams{Pricing: testPricing(), Promos: StandardPromos(), Seed: seed})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestTotalsSampleCart(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	totals := e.Totals()

	if !totals.Subtotal.Equal(dec("35.99")) {
		t.Fatalf("expected subtotal 35.99, got %s", totals.Subtotal)
	}
	if !totals.DeliveryFee.Equal(dec("5.00")) {
		t.Fatalf("expected delivery fee 5.00, got %s", totals.DeliveryFee)
	}
	if !totals.Taxes.Equal(dec("2.88")) {
		t.Fatalf("expected taxes 2.88, got %s", totals.Taxes)
	}
	if !totals.Total.Equal(dec("43.87")) {
		t.Fatalf("expected total 43.87, got %s", totals.Total)
	}
}

func TestTotalsIdentityHolds(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	if _, err := e.ApplyPromoCode("FREE5"); err != nil {
		t.Fatalf("apply promo: %v", err)
	}

	totals := e.Totals()
	want := totals.Subtotal.Sub(totals.PromoDiscount).Add(totals.DeliveryFee).Add(totals.Taxes).Round(2)
	if !totals.Total.Equal(want) {
		t.Fatalf("total identity broken: total=%s want=%s", totals.Total, want)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	totals := e.Totals()

	if !totals.Subtotal.IsZero() || !totals.DeliveryFee.IsZero() || !totals.Taxes.IsZero() || !totals.Total.IsZero() {
		t.Fatalf("expected all-zero totals for empty cart, got %+v", totals)
	}
}

func TestTotalsIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	first := e.Totals()
	second := e.Totals()
	if !first.Total.Equal(second.Total) || !first.Subtotal.Equal(second.Subtotal) {
		t.Fatalf("Totals mutated state: first=%+v second=%+v", first, second)
	}
	if len(e.Items()) != 3 {
		t.Fatalf("expected 3 items after Totals, got %d", len(e.Items()))
	}
}

func TestApplyPromoSave10IsSubtotalSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, []LineItem{
		{ID: "a", Name: "A", UnitPrice: dec("50.00"), Quantity: 2},
	})

	applied, err := e.ApplyPromoCode("SAVE10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied.Discount.Equal(dec("10.00")) {
		t.Fatalf("expected 10.00 discount on 100.00 subtotal, got %s", applied.Discount)
	}

	// The discount stays frozen when the cart changes afterwards.
	e.ChangeQuantity("a", 1)
	if !e.Totals().PromoDiscount.Equal(dec("10.00")) {
		t.Fatalf("expected frozen discount 10.00, got %s", e.Totals().PromoDiscount)
	}
}

func TestApplyPromoFree5Flat(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	applied, err := e.ApplyPromoCode("FREE5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied.Discount.Equal(dec("5.00")) {
		t.Fatalf("expected flat 5.00 discount, got %s", applied.Discount)
	}
}

func TestApplyPromoNormalizesInput(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	applied, err := e.ApplyPromoCode("  save10 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied.Code != "SAVE10" {
		t.Fatalf("expected normalized code SAVE10, got %q", applied.Code)
	}
}

func TestApplyPromoEmptyCartRejected(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	_, err := e.ApplyPromoCode("FREE5")
	if err == nil {
		t.Fatal("expected error applying promo to empty cart")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.PromoCode() != "" {
		t.Fatalf("expected promo state cleared, got %q", e.PromoCode())
	}

	totals := e.Totals()
	if !totals.PromoDiscount.IsZero() {
		t.Fatalf("expected zero discount on empty cart, got %s", totals.PromoDiscount)
	}
	if totals.Total.IsNegative() {
		t.Fatalf("empty cart must never report a negative total, got %s", totals.Total)
	}
	if !totals.Total.IsZero() {
		t.Fatalf("expected zero total on empty cart, got %s", totals.Total)
	}
}

func TestApplyPromoUnknownCodeResetsDiscount(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	if _, err := e.ApplyPromoCode("FREE5"); err != nil {
		t.Fatalf("apply promo: %v", err)
	}

	_, err := e.ApplyPromoCode("NOPE99")
	if err == nil {
		t.Fatal("expected invalid code error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Totals().PromoDiscount.IsZero() {
		t.Fatalf("expected discount reset to zero, got %s", e.Totals().PromoDiscount)
	}
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	before := len(e.Items())

	warnings := e.ChangeQuantity("soda1", 0)

	if got := len(e.Items()); got != before-1 {
		t.Fatalf("expected item count %d, got %d", before-1, got)
	}
	if len(warnings) != 1 || warnings[0].Type != enums.CartItemWarningTypeLineRemoved {
		t.Fatalf("expected line_removed warning, got %+v", warnings)
	}
	for _, item := range e.Items() {
		if item.ID == "soda1" {
			t.Fatal("removed item still present")
		}
	}
}

func TestChangeQuantityClampsToMax(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	warnings := e.ChangeQuantity("pizza1", 500)

	if len(warnings) != 1 || warnings[0].Type != enums.CartItemWarningTypeClampedToMax {
		t.Fatalf("expected clamped_to_max warning, got %+v", warnings)
	}
	if e.Items()[0].Quantity != 99 {
		t.Fatalf("expected quantity clamped to 99, got %d", e.Items()[0].Quantity)
	}
}

func TestChangeQuantityUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	warnings := e.ChangeQuantity("ghost", 3)

	if warnings != nil {
		t.Fatalf("expected no warnings for unknown id, got %+v", warnings)
	}
	if len(e.Items()) != 3 {
		t.Fatalf("expected cart untouched, got %d items", len(e.Items()))
	}
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	e.RemoveItem("ghost")
	if len(e.Items()) != 3 {
		t.Fatalf("expected cart untouched, got %d items", len(e.Items()))
	}
}

func TestEmptyingCartClearsPromoState(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, []LineItem{
		{ID: "a", Name: "A", UnitPrice: dec("20.00"), Quantity: 1},
	})
	if _, err := e.ApplyPromoCode("FREE5"); err != nil {
		t.Fatalf("apply promo: %v", err)
	}

	e.RemoveItem("a")

	totals := e.Totals()
	if !totals.Total.IsZero() {
		t.Fatalf("expected zero total for emptied cart, got %s", totals.Total)
	}
	if e.PromoCode() != "" {
		t.Fatalf("expected promo code cleared, got %q", e.PromoCode())
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	if _, err := e.AddItem(LineItem{ID: "soda1", Name: "Cola Can", UnitPrice: dec("1.50"), Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := e.Items()
	if len(items) != 3 {
		t.Fatalf("expected merge, got %d lines", len(items))
	}
	if items[2].Quantity != 6 {
		t.Fatalf("expected merged quantity 6, got %d", items[2].Quantity)
	}
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	if _, err := e.AddItem(LineItem{ID: " ", Name: "X", UnitPrice: dec("1.00"), Quantity: 1}); err == nil {
		t.Fatal("expected error for blank id")
	}
	if _, err := e.AddItem(LineItem{ID: "x", Name: "X", UnitPrice: dec("-1.00"), Quantity: 1}); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := e.AddItem(LineItem{ID: "x", Name: "X", UnitPrice: dec("1.00"), Quantity: 0}); err == nil {
		t.Fatal("expected error for non-positive quantity")
	}
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, seedItems())
	ids := []string{"pizza1", "burger1", "soda1"}
	for i, item := range e.Items() {
		if item.ID != ids[i] {
			t.Fatalf("expected %s at position %d, got %s", ids[i], i, item.ID)
		}
	}
}
