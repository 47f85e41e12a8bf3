package catalog

import "github.com/shopspring/decimal"

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedCuisines is the fixed cuisine chip list for the browse surface.
func SeedCuisines() []string {
	return []string{
		"Italian", "Chinese", "Mexican", "Indian", "Pizza",
		"Burgers", "Sushi", "Vegan", "Thai", "Desserts",
	}
}

// SeedPromotions returns the featured offers carousel content.
func SeedPromotions() []Promotion {
	return []Promotion{
		{ID: "promo1", Title: "50% Off Your First Order!", Description: "Valid for new users."},
		{ID: "promo2", Title: "Free Delivery Weekend", Description: "On orders over $20."},
		{ID: "promo3", Title: "Taco Tuesday Extravaganza", Description: "All tacos 20% off."},
	}
}

// SeedRestaurants returns the mock restaurant set, with a full menu for the
// flagship pizzeria and lighter menus for the rest.
func SeedRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:           "1",
			Slug:         "pizza-palace",
			Name:         "Pizza Palace",
			CuisineTypes: []string{"Pizza", "Italian"},
			Rating:       4.5,
			ReviewCount:  150,
			DeliveryTime: "25-35 min",
			PromoTag:     "20% OFF",
			OpeningHours: "Mon-Sun: 11:00 AM - 10:30 PM",
			Address:      "123 Pizza Lane, Foodville, FV 45678",
			Description:  "Authentic Neapolitan pizza baked in a wood-fired oven, fresh pasta, and Italian desserts.",
			Sections: []MenuSection{
				{
					Name: "Starters",
					Items: []MenuItem{
						{ID: "app1", Name: "Garlic Knots (6 pcs)", Description: "House-made dough tossed in garlic-herb butter, served with marinara.", Price: price("7.99")},
						{ID: "app2", Name: "Caprese Skewers", Description: "Cherry tomatoes, fresh mozzarella, basil, balsamic glaze.", Price: price("9.50")},
					},
				},
				{
					Name: "Wood-Fired Pizzas",
					Items: []MenuItem{
						{ID: "piz1", Name: "Margherita Classica", Description: "San Marzano tomato sauce, fresh mozzarella, basil, extra virgin olive oil.", Price: price("15.99")},
						{ID: "piz2", Name: "Diavola (Spicy Salami)", Description: "Tomato sauce, mozzarella, spicy salami, fresh chili, black olives.", Price: price("18.50")},
						{ID: "piz3", Name: "Funghi & Tartufo", Description: "Mozzarella, mixed wild mushrooms, truffle oil, parsley.", Price: price("19.00"), Unavailable: true},
					},
				},
				{
					Name: "Pasta Fresca",
					Items: []MenuItem{
						{ID: "pas1", Name: "Spaghetti Carbonara", Description: "Guanciale, pecorino romano, egg yolk, black pepper.", Price: price("17.00")},
						{ID: "pas2", Name: "Lasagna Bolognese", Description: "Fresh pasta layers, meat ragu, bechamel, Parmesan.", Price: price("18.00")},
					},
				},
				{
					Name: "Desserts & Drinks",
					Items: []MenuItem{
						{ID: "des1", Name: "Tiramisu", Description: "Ladyfingers dipped in coffee, mascarpone cream, cocoa.", Price: price("8.00")},
						{ID: "drk1", Name: "San Pellegrino (500ml)", Description: "Sparkling natural mineral water.", Price: price("3.50")},
					},
				},
			},
			Reviews: []Review{
				{ID: "r1", UserName: "Sarah K.", Rating: 5, Date: "2 days ago", Comment: "Absolutely divine pizza! Best Margherita I've had outside Naples."},
				{ID: "r2", UserName: "Mike P.", Rating: 4, Date: "1 week ago", Comment: "Great pasta, good service. Will return!"},
				{ID: "r3", UserName: "Chen L.", Rating: 5, Date: "3 weeks ago", Comment: "Authentic and delicious. The Diavola had a nice kick!"},
			},
		},
		{
			ID:           "2",
			Slug:         "sushi-zen",
			Name:         "Sushi Zen",
			CuisineTypes: []string{"Japanese", "Sushi"},
			Rating:       4.8,
			ReviewCount:  210,
			DeliveryTime: "30-40 min",
			Sections: []MenuSection{
				{
					Name: "Rolls",
					Items: []MenuItem{
						{ID: "sus1", Name: "California Roll", Description: "Crab, avocado, cucumber.", Price: price("8.50")},
						{ID: "sus2", Name: "Spicy Tuna Roll", Description: "Tuna, sriracha mayo, scallion.", Price: price("10.00")},
					},
				},
			},
		},
		{
			ID:           "3",
			Slug:         "burger-bliss",
			Name:         "Burger Bliss",
			CuisineTypes: []string{"Burgers", "American"},
			Rating:       4.3,
			ReviewCount:  180,
			DeliveryTime: "20-30 min",
			PromoTag:     "Free Fries",
			Sections: []MenuSection{
				{
					Name: "Burgers",
					Items: []MenuItem{
						{ID: "bur1", Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, lettuce, tomato, house sauce.", Price: price("11.50")},
						{ID: "bur2", Name: "Chicken Burger", Description: "Crispy chicken, slaw, pickles.", Price: price("12.50")},
					},
				},
				{
					Name: "Sides",
					Items: []MenuItem{
						{ID: "sid1", Name: "Fries", Description: "Sea-salted skin-on fries.", Price: price("5.00")},
					},
				},
			},
		},
		{
			ID:           "4",
			Slug:         "curry-house",
			Name:         "Curry House",
			CuisineTypes: []string{"Indian", "Curry"},
			Rating:       4.6,
			ReviewCount:  250,
			DeliveryTime: "35-45 min",
			Sections: []MenuSection{
				{
					Name: "Curries",
					Items: []MenuItem{
						{ID: "cur1", Name: "Butter Chicken", Description: "Tomato-cream gravy, tandoori chicken.", Price: price("14.00")},
						{ID: "cur2", Name: "Chana Masala", Description: "Chickpeas in spiced onion-tomato sauce.", Price: price("11.00")},
					},
				},
			},
		},
		{
			ID:           "5",
			Slug:         "taco-fiesta",
			Name:         "Taco Fiesta",
			CuisineTypes: []string{"Mexican", "Tacos"},
			Rating:       4.4,
			ReviewCount:  120,
			DeliveryTime: "25-35 min",
			Sections: []MenuSection{
				{
					Name: "Tacos",
					Items: []MenuItem{
						{ID: "tac1", Name: "Carnitas Taco", Description: "Slow-cooked pork, onion, cilantro.", Price: price("4.50")},
						{ID: "tac2", Name: "Baja Fish Taco", Description: "Beer-battered fish, cabbage slaw, chipotle crema.", Price: price("5.00")},
					},
				},
			},
		},
		{
			ID:           "6",
			Slug:         "sweet-sensations",
			Name:         "Sweet Sensations",
			CuisineTypes: []string{"Desserts", "Bakery"},
			Rating:       4.9,
			ReviewCount:  90,
			DeliveryTime: "15-25 min",
			PromoTag:     "New!",
			Sections: []MenuSection{
				{
					Name: "Cakes",
					Items: []MenuItem{
						{ID: "cak1", Name: "Chocolate Fudge Slice", Description: "Triple-layer fudge cake.", Price: price("6.50")},
						{ID: "cak2", Name: "New York Cheesecake", Description: "Classic baked cheesecake, berry coulis.", Price: price("7.00")},
					},
				},
			},
		},
	}
}
