package checkout

import (
	"github.com/foodapp-labs/foodapp-core/pkg/enums"
)

// Form is the raw checkout submission as bound by the form surface.
// Card fields are only meaningful when the payment method is creditCard.
type Form struct {
	FullName      string `json:"fullName" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required,min=5"`
	City          string `json:"city" validate:"required,min=2"`
	PostalCode    string `json:"postalCode" validate:"required,min=4"`
	Country       string `json:"country" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	CardNumber    string `json:"cardNumber"`
	CardExpiry    string `json:"cardExpiry"`
	CardCVC       string `json:"cardCVC"`
}

// CardDetails carries the normalized credit card fields: the number is
// digits only with whitespace stripped.
type CardDetails struct {
	Number string
	Expiry string
	CVC    string
}

// ValidatedForm is a submission that passed every applicable rule.
// Card is nil unless the payment method requires card details.
type ValidatedForm struct {
	FullName      string
	Email         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod enums.PaymentMethod
	Card          *CardDetails
}

// FieldErrors maps form field names to shopper-facing messages. The form
// stays editable; values of fields that failed are never cleared.
type FieldErrors map[string]string

// Add records a message for the field unless one is already present, so the
// first failing rule per field wins.
func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = message
}

// Empty reports whether every applicable rule passed.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}
