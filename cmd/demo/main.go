package main

import (
	"context"
	"fmt"
	"os"

	"github.com/foodapp-labs/foodapp-core/internal/cart"
	"github.com/foodapp-labs/foodapp-core/internal/catalog"
	"github.com/foodapp-labs/foodapp-core/internal/checkout"
	"github.com/foodapp-labs/foodapp-core/internal/orders"
	"github.com/foodapp-labs/foodapp-core/internal/profile"
	"github.com/foodapp-labs/foodapp-core/pkg/config"
	"github.com/foodapp-labs/foodapp-core/pkg/logger"
	"github.com/foodapp-labs/foodapp-core/pkg/money"
	"github.com/foodapp-labs/foodapp-core/pkg/pagination"
	"github.com/joho/godotenv"
)

// demo walks one shopper session end to end: browse the catalog, build a
// cart, apply a promo, check out, and review order history.
func main() {
	logg := logger.New(logger.Options{ServiceName: "demo"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "demo",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogSvc, err := catalog.NewService(catalog.SeedRestaurants(), catalog.SeedCuisines(), catalog.SeedPromotions(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(orders.SeedOrders())
	ordersSvc, err := orders.NewService(ordersRepo, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	formValidator, err := checkout.NewFormValidator(cfg.Checkout.AllowedCountries)
	if err != nil {
		logg.Error(context.Background(), "failed to create form validator", err)
		os.Exit(1)
	}
	checkoutSvc, err := checkout.NewService(formValidator, ordersSvc, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	profileSvc, err := profile.NewService(profile.SeedProfile(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	ctx := logg.WithSessionID(context.Background(), "demo-session")
	account := profileSvc.Get(ctx)
	logg.Info(ctx, fmt.Sprintf("session for %s (%s)", account.Contact.Name, account.Contact.Email))

	if err := run(ctx, logg, cfg, catalogSvc, checkoutSvc, ordersSvc, account); err != nil {
		logg.Error(ctx, "demo session failed", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	logg *logger.Logger,
	cfg *config.Config,
	catalogSvc catalog.Service,
	checkoutSvc checkout.Service,
	ordersSvc orders.Service,
	account profile.Profile,
) error {
	// Browse: pizza places only.
	listed, err := catalogSvc.ListRestaurants(ctx, catalog.Filters{Cuisine: "Pizza"})
	if err != nil {
		return err
	}
	if len(listed) == 0 {
		return fmt.Errorf("no restaurants matched the cuisine filter")
	}
	restaurant, err := catalogSvc.GetRestaurant(ctx, listed[0].Slug)
	if err != nil {
		return err
	}
	ctx = logg.WithRestaurantSlug(ctx, restaurant.Slug)
	logg.Info(ctx, fmt.Sprintf("browsing %s (%d menu sections)", restaurant.Name, len(restaurant.Sections)))

	// Build the cart from the live menu.
	engine, err := cart.NewEngine(cart.EngineParams{
		Pricing: cfg.Pricing,
		Promos:  cart.StandardPromos(),
	})
	if err != nil {
		return err
	}
	for _, pick := range []struct {
		itemID   string
		quantity int
	}{
		{"piz1", 1},
		{"app1", 2},
		{"drk1", 4},
	} {
		item, ok := restaurant.FindItem(pick.itemID)
		if !ok || item.Unavailable {
			continue
		}
		warnings, err := engine.AddItem(cart.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  pick.quantity,
		})
		if err != nil {
			return err
		}
		for _, warning := range warnings {
			logg.Warn(ctx, warning.Message)
		}
	}

	applied, err := engine.ApplyPromoCode("save10")
	if err != nil {
		return err
	}
	logg.Info(ctx, fmt.Sprintf("promo %s applied: %s", applied.Code, applied.Message))

	totals := engine.Totals()
	logg.Info(ctx, fmt.Sprintf(
		"cart: subtotal $%s, discount $%s, delivery $%s, taxes $%s, total $%s",
		money.Format(totals.Subtotal),
		money.Format(totals.PromoDiscount),
		money.Format(totals.DeliveryFee),
		money.Format(totals.Taxes),
		money.Format(totals.Total),
	))

	// Check out with the saved card's owner details.
	draft := checkout.OrderDraft{
		RestaurantName: restaurant.Name,
		Total:          totals.Total,
	}
	for _, line := range engine.Items() {
		draft.Items = append(draft.Items, checkout.DraftItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	confirmation, err := checkoutSvc.Submit(ctx, checkout.Form{
		FullName:      account.Contact.Name,
		Email:         account.Contact.Email,
		Address:       account.Addresses[0].Street,
		City:          account.Addresses[0].City,
		PostalCode:    account.Addresses[0].Zip,
		Country:       "US",
		PaymentMethod: "creditCard",
		CardNumber:    "4242 4242 4242 4242",
		CardExpiry:    "12/25",
		CardCVC:       "123",
	}, draft)
	if err != nil {
		return err
	}
	logg.Info(logg.WithOrderID(ctx, confirmation.OrderID), confirmation.Message)

	// Track the new order and show recent history.
	tracking, err := ordersSvc.Track(ctx, confirmation.OrderID)
	if err != nil {
		return err
	}
	logg.Info(ctx, fmt.Sprintf("order %s: %s (step %d of %d)", tracking.Number, tracking.Status, tracking.Step+1, tracking.Steps))

	history, err := ordersSvc.History(ctx, pagination.Params{Limit: 5})
	if err != nil {
		return err
	}
	for _, past := range history.Orders {
		logg.Info(ctx, fmt.Sprintf("history: %s %s from %s, $%s",
			past.Number, past.PlacedAt.Format("2006-01-02"), past.RestaurantName, money.Format(past.Total)))
	}
	return nil
}
