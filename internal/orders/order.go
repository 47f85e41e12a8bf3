package orders

import (
	"strings"
	"time"

	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one line of a placed order, captured at placement time.
type OrderItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is a placed order as shown in the profile's history.
type Order struct {
	ID             uuid.UUID
	Number         string
	PlacedAt       time.Time
	RestaurantName string
	Status         enums.OrderStatus
	Items          []OrderItem
	Total          decimal.Decimal
}

// TrackingInfo reports where an order sits in the delivery pipeline.
type TrackingInfo struct {
	Number string
	Status enums.OrderStatus
	Step   int
	Steps  int
}

// OrderNumber derives the shopper-facing number from the order id, in the
// FD-prefixed style the order tracker displays.
func OrderNumber(id uuid.UUID) string {
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "FD" + compact[:9]
}
