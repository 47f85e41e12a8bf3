package checkout

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	"github.com/go-playground/validator/v10"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
	whitespacePattern = regexp.MustCompile(`\s`)
)

// FormValidator checks checkout submissions against the full rule set:
// contact constraints via struct tags, country membership, payment method
// enumeration, and the card rule group conditional on the method.
type FormValidator struct {
	validate         *validator.Validate
	allowedCountries map[string]struct{}
}

// NewFormValidator builds a validator restricted to the given country codes.
func NewFormValidator(allowedCountries []string) (*FormValidator, error) {
	if len(allowedCountries) == 0 {
		return nil, fmt.Errorf("at least one allowed country is required")
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})

	allowed := make(map[string]struct{}, len(allowedCountries))
	for _, country := range allowedCountries {
		allowed[strings.ToUpper(strings.TrimSpace(country))] = struct{}{}
	}

	return &FormValidator{validate: v, allowedCountries: allowed}, nil
}

// Validate runs every applicable rule and collects all field errors. On
// success it returns the normalized form; on failure the error map names
// every failing field.
func (fv *FormValidator) Validate(form Form) (*ValidatedForm, FieldErrors) {
	form = trimContactFields(form)
	fieldErrors := FieldErrors{}

	if err := fv.validate.Struct(form); err != nil {
		collectTagErrors(err, fieldErrors)
	}

	country := strings.ToUpper(form.Country)
	if _, ok := fieldErrors["country"]; !ok && country != "" {
		if _, allowed := fv.allowedCountries[country]; !allowed {
			fieldErrors.Add("country", "is not a supported country")
		}
	}

	method, methodErr := enums.ParsePaymentMethod(form.PaymentMethod)
	if _, ok := fieldErrors["paymentMethod"]; !ok && methodErr != nil {
		fieldErrors.Add("paymentMethod", "must be a valid payment method")
	}

	var card *CardDetails
	if methodErr == nil && method.RequiresCardDetails() {
		card = validateCardGroup(form, fieldErrors)
	}

	if !fieldErrors.Empty() {
		return nil, fieldErrors
	}

	return &ValidatedForm{
		FullName:      form.FullName,
		Email:         form.Email,
		Address:       form.Address,
		City:          form.City,
		PostalCode:    form.PostalCode,
		Country:       country,
		PaymentMethod: method,
		Card:          card,
	}, nil
}

// validateCardGroup applies the credit-card rule group. Absence of any of
// the three fields is a single error attached to cardNumber and short
// circuits the format checks.
func validateCardGroup(form Form, fieldErrors FieldErrors) *CardDetails {
	number := strings.TrimSpace(form.CardNumber)
	expiry := strings.TrimSpace(form.CardExpiry)
	cvc := strings.TrimSpace(form.CardCVC)

	if number == "" || expiry == "" || cvc == "" {
		fieldErrors.Add("cardNumber", "card number, expiry, and CVC are required for credit card payments")
		return nil
	}

	digits := whitespacePattern.ReplaceAllString(number, "")
	if !cardNumberPattern.MatchString(digits) {
		fieldErrors.Add("cardNumber", "must be 13 to 19 digits")
	}
	if !cardExpiryPattern.MatchString(expiry) {
		fieldErrors.Add("cardExpiry", "must match MM/YY with a month from 01 to 12")
	}
	if !cardCVCPattern.MatchString(cvc) {
		fieldErrors.Add("cardCVC", "must be 3 or 4 digits")
	}

	if !fieldErrors.Empty() {
		return nil
	}
	return &CardDetails{Number: digits, Expiry: expiry, CVC: cvc}
}

func trimContactFields(form Form) Form {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Address = strings.TrimSpace(form.Address)
	form.City = strings.TrimSpace(form.City)
	form.PostalCode = strings.TrimSpace(form.PostalCode)
	form.Country = strings.TrimSpace(form.Country)
	form.PaymentMethod = strings.TrimSpace(form.PaymentMethod)
	return form
}

func collectTagErrors(err error, fieldErrors FieldErrors) {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors.Add("form", "is invalid")
		return
	}
	for _, fieldErr := range errs {
		fieldErrors.Add(fieldErr.Field(), validationMessage(fieldErr))
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}
