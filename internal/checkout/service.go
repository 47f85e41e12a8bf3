package checkout

import (
	"context"
	"sync/atomic"

	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/logger"
	"github.com/shopspring/decimal"
)

// DraftItem is one order line captured at submission time.
type DraftItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderDraft is the order payload handed to the placer on a valid submit.
type OrderDraft struct {
	Customer       ValidatedForm
	RestaurantName string
	Items          []DraftItem
	Total          decimal.Decimal
}

// Confirmation reports a successfully placed order.
type Confirmation struct {
	OrderID string
	Message string
}

// OrderPlacer hands a validated order to the fulfillment side. Placement
// latency and failure modes are the placer's concern.
type OrderPlacer interface {
	Place(ctx context.Context, draft OrderDraft) (*Confirmation, error)
}

// Service validates checkout submissions and drives order placement.
type Service interface {
	Submit(ctx context.Context, form Form, draft OrderDraft) (*Confirmation, error)
}

type service struct {
	validator *FormValidator
	placer    OrderPlacer
	logg      *logger.Logger

	inFlight atomic.Bool
}

// NewService builds a checkout service backed by the provided stack.
func NewService(validator *FormValidator, placer OrderPlacer, logg *logger.Logger) (Service, error) {
	if validator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "form validator required")
	}
	if placer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order placer required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger required")
	}
	return &service{
		validator: validator,
		placer:    placer,
		logg:      logg,
	}, nil
}

// Submit validates the form and places the order. While a placement is in
// flight further submissions are rejected; once it resolves or fails the
// form becomes submittable again. A placement failure creates no order.
func (s *service) Submit(ctx context.Context, form Form, draft OrderDraft) (*Confirmation, error) {
	validated, fieldErrors := s.validator.Validate(form)
	if !fieldErrors.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout form is invalid").
			WithDetails(map[string]any{"fields": fieldErrors})
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "a submission is already in progress")
	}
	defer s.inFlight.Store(false)

	draft.Customer = *validated
	confirmation, err := s.placer.Place(ctx, draft)
	if err != nil {
		s.logg.Error(ctx, "order placement failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "place order")
	}

	s.logg.Info(s.logg.WithOrderID(ctx, confirmation.OrderID), "order placed")
	return confirmation, nil
}
