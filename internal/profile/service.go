package profile

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/logger"
)

// Service manages the shopper's account view.
type Service interface {
	Get(ctx context.Context) Profile
	UpdateContact(ctx context.Context, contact Contact) error
	Addresses(ctx context.Context) []Address
	PaymentMethods(ctx context.Context) []SavedPayment
	ToggleNotification(ctx context.Context, key string) (bool, error)
}

type service struct {
	mu       sync.RWMutex
	profile  Profile
	validate *validator.Validate
	logg     *logger.Logger
}

// NewService builds a profile service around the given account snapshot.
func NewService(seed Profile, logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger required")
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return field.Name
		}
		return tag
	})

	return &service{profile: seed, validate: validate, logg: logg}, nil
}

func (s *service) Get(ctx context.Context) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// UpdateContact replaces the contact block after validation. A rejected
// update leaves the stored profile untouched.
func (s *service) UpdateContact(ctx context.Context, contact Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)

	if err := s.validate.Struct(contact); err != nil {
		fields := map[string]string{}
		if invalid, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range invalid {
				fields[fieldErr.Field()] = contactMessage(fieldErr)
			}
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "contact details are invalid").
			WithDetails(map[string]any{"fields": fields})
	}

	s.mu.Lock()
	s.profile.Contact = contact
	s.mu.Unlock()

	s.logg.Info(ctx, "contact details updated")
	return nil
}

func (s *service) Addresses(ctx context.Context) []Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Address(nil), s.profile.Addresses...)
}

func (s *service) PaymentMethods(ctx context.Context) []SavedPayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SavedPayment(nil), s.profile.Payments...)
}

// ToggleNotification flips the named preference and returns the new value.
func (s *service) ToggleNotification(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.profile.Notifications[key]
	if !ok {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown notification preference %q", key))
	}
	s.profile.Notifications[key] = !current
	return !current, nil
}

func (s *service) snapshotLocked() Profile {
	snapshot := s.profile
	snapshot.Addresses = append([]Address(nil), s.profile.Addresses...)
	snapshot.Payments = append([]SavedPayment(nil), s.profile.Payments...)
	snapshot.Notifications = make(map[string]bool, len(s.profile.Notifications))
	for key, value := range s.profile.Notifications {
		snapshot.Notifications[key] = value
	}
	return snapshot
}

func contactMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	default:
		return "invalid value"
	}
}
