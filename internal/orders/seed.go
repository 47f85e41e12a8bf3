package orders

import (
	"time"

	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedOrders returns the mock order history a fresh session starts with:
// one order still moving through the pipeline and two delivered ones.
func SeedOrders() []Order {
	return []Order{
		{
			ID:             uuid.MustParse("7d4f1a3e-9b2c-4d8a-a1f0-3c5e7b9d2f41"),
			Number:         "FD12345XYZ",
			PlacedAt:       time.Date(2024, 7, 15, 18, 5, 0, 0, time.UTC),
			RestaurantName: "Pizza Palace",
			Status:         enums.OrderStatusOutForDelivery,
			Items: []OrderItem{
				{Name: "Margherita Pizza", Quantity: 1, UnitPrice: decimal.RequireFromString("12.99")},
				{Name: "Soda Bundle (4-pack)", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
			},
			Total: decimal.RequireFromString("22.31"),
		},
		{
			ID:             uuid.MustParse("1f8c6b2d-4a9e-4f3b-8d7c-0e2a5b8c1d93"),
			Number:         "FD00789ABC",
			PlacedAt:       time.Date(2024, 7, 10, 19, 30, 0, 0, time.UTC),
			RestaurantName: "Luigi's Pizzeria",
			Status:         enums.OrderStatusDelivered,
			Items: []OrderItem{
				{Name: "Margherita Pizza", Quantity: 1, UnitPrice: decimal.RequireFromString("15.99")},
				{Name: "Coke", Quantity: 4, UnitPrice: decimal.RequireFromString("2.00")},
			},
			Total: decimal.RequireFromString("35.99"),
		},
		{
			ID:             uuid.MustParse("9a3e5d7c-2b1f-4c6a-9e8d-4f0b7a2c5e16"),
			Number:         "FD00654DEF",
			PlacedAt:       time.Date(2024, 6, 25, 12, 45, 0, 0, time.UTC),
			RestaurantName: "Burger Hub",
			Status:         enums.OrderStatusDelivered,
			Items: []OrderItem{
				{Name: "Chicken Burger", Quantity: 1, UnitPrice: decimal.RequireFromString("12.50")},
				{Name: "Fries", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
				{Name: "Sprite", Quantity: 1, UnitPrice: decimal.RequireFromString("2.50")},
			},
			Total: decimal.RequireFromString("22.50"),
		},
	}
}
