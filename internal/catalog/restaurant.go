package catalog

import "github.com/shopspring/decimal"

// MenuItem is one orderable dish. Unavailable items stay visible on the
// menu but cannot be added to a cart.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Unavailable bool
}

// MenuSection groups menu items under a category heading, in menu order.
type MenuSection struct {
	Name  string
	Items []MenuItem
}

// Review is shopper feedback shown on the restaurant detail page.
type Review struct {
	ID       string
	UserName string
	Rating   int
	Date     string
	Comment  string
}

// Restaurant is a listed restaurant with its full menu and reviews.
type Restaurant struct {
	ID           string
	Slug         string
	Name         string
	CuisineTypes []string
	Rating       float64
	ReviewCount  int
	DeliveryTime string
	PromoTag     string
	OpeningHours string
	Address      string
	Description  string
	Sections     []MenuSection
	Reviews      []Review
}

// FindItem returns the menu item with the given id, if the restaurant
// serves it.
func (r Restaurant) FindItem(itemID string) (*MenuItem, bool) {
	for _, section := range r.Sections {
		for i := range section.Items {
			if section.Items[i].ID == itemID {
				return &section.Items[i], true
			}
		}
	}
	return nil, false
}

// Promotion is a featured offer shown on the home surface.
type Promotion struct {
	ID          string
	Title       string
	Description string
}
