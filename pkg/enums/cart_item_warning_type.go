package enums

import "fmt"

// CartItemWarningType enumerates warning reasons recorded against cart lines.
type CartItemWarningType string

const (
	CartItemWarningTypeClampedToMin CartItemWarningType = "clamped_to_min"
	CartItemWarningTypeClampedToMax CartItemWarningType = "clamped_to_max"
	CartItemWarningTypeLineRemoved  CartItemWarningType = "line_removed"
)

var validCartItemWarningTypes = []CartItemWarningType{
	CartItemWarningTypeClampedToMin,
	CartItemWarningTypeClampedToMax,
	CartItemWarningTypeLineRemoved,
}

// String implements fmt.Stringer.
func (c CartItemWarningType) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CartItemWarningType) IsValid() bool {
	for _, candidate := range validCartItemWarningTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartItemWarningType converts raw input into a CartItemWarningType.
func ParseCartItemWarningType(value string) (CartItemWarningType, error) {
	for _, candidate := range validCartItemWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart item warning type %q", value)
}
