package entities

// PricingTier is one entry of the read-only plan catalog. The checkout flow
// copies fields from it into the order snapshot at purchase time.

type PricingTier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	NumericPrice float64  `json:"numeric_price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted"`
	ButtonText   string   `json:"button_text"`
}

// DefaultCatalog is the agency's static plan list (BDT pricing).
var DefaultCatalog = []PricingTier{
	{
		ID:           "starter",
		Name:         "Student / Starter",
		Price:        "৳5,000",
		NumericPrice: 5000,
		Description:  "Get your professional CV or Portfolio live. Perfect for students and freelancers in BD.",
		Features: []string{
			"1-Page Static Portfolio",
			"Free .xyz Domain (1 Year)",
			"Mobile Responsive",
			"Contact Form (Email Forward)",
			"Limited Support",
			"Delivery in 48 Hours",
		},
		ButtonText: "Start Now",
	},
	{
		ID:           "pro",
		Name:         "Professional",
		Price:        "৳15,000",
		NumericPrice: 15000,
		Description:  "Dynamic website with Admin Panel content control. Best for small businesses.",
		Features: []string{
			"5-Page Dynamic Website",
			"Admin Dashboard (CMS)",
			"Database Integration",
			"User Login System (Basic)",
			".com Domain included",
			"SEO Optimization (Google Rank)",
			"3 Months Local Support",
		},
		ButtonText:  "Go Professional",
		Highlighted: true,
	},
	{
		ID:           "enterprise",
		Name:         "E-Commerce / Custom",
		Price:        "৳40,000+",
		NumericPrice: 40000,
		Description:  "Full scale online store or custom web application for your business.",
		Features: []string{
			"Unlimited Pages & Products",
			"Full Customer Login & Profiles",
			"bKash/Nagad Payment Gateway",
			"Inventory Management",
			"Advanced Database & API",
			"Android App (Optional Add-on)",
			"Priority 24/7 Support",
		},
		ButtonText: "Contact Sales",
	},
}

// FindTier looks a tier up by id in the default catalog.
func FindTier(id string) (PricingTier, bool) {
	for _, t := range DefaultCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return PricingTier{}, false
}
