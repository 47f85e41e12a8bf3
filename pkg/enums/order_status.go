package enums

import "fmt"

// OrderStatus tracks an order through the delivery pipeline.
type OrderStatus string

const (
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "outForDelivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// orderStatusSequence is the fixed progression an order moves through.
var orderStatusSequence = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range orderStatusSequence {
		if candidate == o {
			return true
		}
	}
	return false
}

// StepIndex returns the zero-based position in the delivery pipeline,
// or -1 for unknown values.
func (o OrderStatus) StepIndex() int {
	for i, candidate := range orderStatusSequence {
		if candidate == o {
			return i
		}
	}
	return -1
}

// Next returns the following status and whether one exists.
func (o OrderStatus) Next() (OrderStatus, bool) {
	idx := o.StepIndex()
	if idx < 0 || idx >= len(orderStatusSequence)-1 {
		return "", false
	}
	return orderStatusSequence[idx+1], true
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range orderStatusSequence {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
