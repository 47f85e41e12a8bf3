package profile

// Contact is the shopper's editable personal information.
type Contact struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=7"`
}

// Address is a saved delivery address.
type Address struct {
	ID        string
	Label     string
	Street    string
	City      string
	Zip       string
	IsDefault bool
}

// SavedPayment is a stored card surfaced as masked display data only. The
// full PAN is never held client-side.
type SavedPayment struct {
	ID     string
	Brand  string
	Last4  string
	Expiry string
}

// Profile is the full account view: contact details, saved addresses and
// cards, and notification toggles.
type Profile struct {
	Contact       Contact
	Addresses     []Address
	Payments      []SavedPayment
	Notifications map[string]bool
}

// Notification preference keys.
const (
	NotifyOrderUpdatesEmail = "orderUpdatesEmail"
	NotifyOrderUpdatesSMS   = "orderUpdatesSms"
	NotifyPromotionsEmail   = "promotionsEmail"
	NotifyNewsletters       = "newsletters"
)

// SeedProfile returns the mock account a fresh session starts with.
func SeedProfile() Profile {
	return Profile{
		Contact: Contact{
			Name:  "Alex Johnson",
			Email: "alex.johnson@example.com",
			Phone: "555-123-4567",
		},
		Addresses: []Address{
			{ID: "addr1", Label: "Home", Street: "123 Culinary Lane", City: "Foodville", Zip: "12345", IsDefault: true},
			{ID: "addr2", Label: "Work", Street: "456 Work Drive", City: "Foodville", Zip: "67890"},
		},
		Payments: []SavedPayment{
			{ID: "pay1", Brand: "Visa", Last4: "4242", Expiry: "12/2025"},
			{ID: "pay2", Brand: "MasterCard", Last4: "5555", Expiry: "06/2027"},
		},
		Notifications: map[string]bool{
			NotifyOrderUpdatesEmail: true,
			NotifyOrderUpdatesSMS:   false,
			NotifyPromotionsEmail:   true,
			NotifyNewsletters:       false,
		},
	}
}
