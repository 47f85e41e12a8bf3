package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/foodapp-labs/foodapp-core/internal/checkout"
	"github.com/foodapp-labs/foodapp-core/pkg/config"
	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/logger"
	"github.com/foodapp-labs/foodapp-core/pkg/pagination"
	"github.com/google/uuid"
)

// HistoryPage is one page of the shopper's order history.
type HistoryPage struct {
	Orders     []Order
	NextCursor string
}

// Service exposes order history, tracking, and placement.
type Service interface {
	History(ctx context.Context, params pagination.Params) (*HistoryPage, error)
	Track(ctx context.Context, number string) (*TrackingInfo, error)
	Advance(ctx context.Context, number string) error
	Place(ctx context.Context, draft checkout.OrderDraft) (*checkout.Confirmation, error)
}

type service struct {
	repo *Repository
	cfg  config.CheckoutConfig
	logg *logger.Logger
	now  func() time.Time
}

// NewService builds an orders service on top of the given repository.
func NewService(repo *Repository, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger required")
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		logg: logg,
		now:  time.Now,
	}, nil
}

// History returns one page of past orders, newest first.
func (s *service) History(ctx context.Context, params pagination.Params) (*HistoryPage, error) {
	rows, next, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &HistoryPage{Orders: rows, NextCursor: next}, nil
}

// Track reports where the order sits in the delivery pipeline.
func (s *service) Track(ctx context.Context, number string) (*TrackingInfo, error) {
	order, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &TrackingInfo{
		Number: order.Number,
		Status: order.Status,
		Step:   order.Status.StepIndex(),
		Steps:  enums.OrderStatusDelivered.StepIndex() + 1,
	}, nil
}

// Advance moves the order to the next pipeline status. Delivered orders do
// not move again.
func (s *service) Advance(ctx context.Context, number string) error {
	return s.repo.UpdateStatus(ctx, number, func(order *Order) error {
		next, ok := order.Status.Next()
		if !ok {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order %s already %s", order.Number, order.Status))
		}
		order.Status = next
		return nil
	})
}

// Place turns a validated checkout draft into a confirmed order. The wait
// models the restaurant accepting the order; cancelling the context aborts
// placement and no order is stored.
func (s *service) Place(ctx context.Context, draft checkout.OrderDraft) (*checkout.Confirmation, error) {
	if len(draft.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order draft has no items")
	}

	if s.cfg.PlacementLatency > 0 {
		timer := time.NewTimer(s.cfg.PlacementLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "awaiting order acceptance")
		case <-timer.C:
		}
	}

	id := uuid.New()
	order := Order{
		ID:             id,
		Number:         OrderNumber(id),
		PlacedAt:       s.now().UTC(),
		RestaurantName: draft.RestaurantName,
		Status:         enums.OrderStatusConfirmed,
		Total:          draft.Total,
	}
	for _, item := range draft.Items {
		order.Items = append(order.Items, OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithOrderID(ctx, order.Number), "order confirmed")
	return &checkout.Confirmation{
		OrderID: order.Number,
		Message: fmt.Sprintf("Order %s confirmed! Your food is on its way.", order.Number),
	}, nil
}
