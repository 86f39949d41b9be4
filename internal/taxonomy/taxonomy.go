// Package taxonomy defines the fixed expense category system used both to
// steer the generative model and to validate its output.
package taxonomy

// CatchAll is the fallback category used whenever a suggested category is not
// part of the taxonomy.
const CatchAll = "Miscellaneous"

// categories is the ordered set of valid expense categories.
var categories = []string{
	"Housing",
	"Transportation",
	"Food & Dining",
	"Shopping",
	"Entertainment",
	"Technology & Electronics",
	"Health & Fitness",
	"Education",
	"Personal Care",
	"Pets",
	"Travel",
	"Financial",
	"Insurance",
	"Gifts & Donations",
	"Kids & Family",
	"Business Expenses",
	"Subscriptions",
	"Utilities & Bills",
	"Savings & Investments",
	CatchAll,
}

// subcategories maps each category to its ordered list of allowed
// subcategories. The first entry doubles as the default when the model's
// suggestion is invalid.
var subcategories = map[string][]string{
	"Housing": {
		"Rent/Mortgage",
		"Property Tax",
		"Home Insurance",
		"Utilities",
		"Internet & Cable",
		"Home Maintenance",
		"Furniture",
		"Home Improvement",
	},
	"Transportation": {
		"Vehicle Purchase",
		"Fuel/Gas",
		"Car Insurance",
		"Car Maintenance",
		"Public Transit",
		"Parking",
		"Ride Share",
		"Vehicle Registration",
	},
	"Food & Dining": {
		"Groceries",
		"Restaurants",
		"Fast Food",
		"Coffee Shops",
		"Food Delivery",
		"Alcohol & Bars",
	},
	"Shopping": {
		"Clothing",
		"Shoes",
		"Accessories",
		"Personal Items",
		"Household Supplies",
		"Online Shopping",
	},
	"Entertainment": {
		"Streaming Services",
		"Movies & Theater",
		"Concerts & Events",
		"Gaming",
		"Hobbies",
		"Books & Magazines",
		"Sports & Recreation",
	},
	"Technology & Electronics": {
		"Computers & Laptops",
		"Phones & Tablets",
		"Smart Home Devices",
		"Gadgets",
		"Software & Apps",
		"Electronics Accessories",
	},
	"Health & Fitness": {
		"Doctor Visits",
		"Medications",
		"Health Insurance",
		"Gym Membership",
		"Fitness Equipment",
		"Supplements",
		"Mental Health",
	},
	"Education": {
		"Tuition & Fees",
		"Books & Supplies",
		"Online Courses",
		"Workshops & Training",
		"Student Loans",
	},
	"Personal Care": {
		"Hair Care",
		"Skincare",
		"Cosmetics",
		"Spa & Salon",
		"Grooming",
	},
	"Pets": {
		"Pet Food",
		"Veterinary",
		"Pet Insurance",
		"Pet Supplies",
		"Pet Grooming",
	},
	"Travel": {
		"Flights",
		"Hotels",
		"Vacation Rentals",
		"Travel Insurance",
		"Activities & Tours",
		"Souvenirs",
	},
	"Financial": {
		"Bank Fees",
		"Investment Fees",
		"Credit Card Fees",
		"ATM Fees",
		"Tax Preparation",
		"Financial Advice",
	},
	"Insurance": {
		"Life Insurance",
		"Health Insurance",
		"Car Insurance",
		"Home Insurance",
		"Other Insurance",
	},
	"Gifts & Donations": {
		"Gifts",
		"Charity",
		"Religious Donations",
		"Crowdfunding",
	},
	"Kids & Family": {
		"Childcare",
		"Toys",
		"School Supplies",
		"Allowance",
		"Kids Activities",
		"Diapers & Baby Supplies",
	},
	"Business Expenses": {
		"Office Supplies",
		"Business Travel",
		"Professional Services",
		"Marketing",
		"Equipment",
		"Licenses & Permits",
	},
	"Subscriptions": {
		"Video Streaming",
		"Music Streaming",
		"Software Subscriptions",
		"News & Media",
		"Cloud Storage",
		"Other Subscriptions",
	},
	"Utilities & Bills": {
		"Electric",
		"Water",
		"Gas",
		"Internet",
		"Phone",
		"Trash/Recycling",
	},
	"Savings & Investments": {
		"Emergency Fund",
		"Retirement",
		"Stocks & Bonds",
		"Real Estate",
		"Cryptocurrency",
	},
	CatchAll: {
		"Other",
	},
}

// searchCategories maps expense categories to Pixabay search category tags,
// biasing image search results toward relevant imagery.
var searchCategories = map[string]string{
	"Food & Dining":            "food",
	"Housing":                  "buildings",
	"Transportation":           "transportation",
	"Shopping":                 "business",
	"Entertainment":            "music",
	"Technology & Electronics": "computer",
	"Health & Fitness":         "health",
	"Education":                "education",
	"Personal Care":            "people",
	"Pets":                     "animals",
	"Travel":                   "travel",
	"Financial":                "business",
	"Insurance":                "business",
	"Gifts & Donations":        "people",
	"Kids & Family":            "people",
	"Business Expenses":        "business",
	"Subscriptions":            "backgrounds",
	"Utilities & Bills":        "industry",
	"Savings & Investments":    "business",
	CatchAll:                   "backgrounds",
}

// Categories returns the ordered list of valid category names.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Subcategories returns the ordered list of allowed subcategories for a
// category, or nil if the category is not part of the taxonomy.
func Subcategories(category string) []string {
	subs, ok := subcategories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// IsCategory reports whether name is an exact member of the category set.
func IsCategory(name string) bool {
	_, ok := subcategories[name]
	return ok
}

// IsSubcategory reports whether sub is an allowed subcategory of category.
func IsSubcategory(category, sub string) bool {
	for _, s := range subcategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// Normalize returns category unchanged when it is part of the taxonomy, and
// the catch-all category otherwise.
func Normalize(category string) string {
	if IsCategory(category) {
		return category
	}
	return CatchAll
}

// SearchCategory returns the image-search category tag mapped to an expense
// category, if one exists.
func SearchCategory(category string) (string, bool) {
	tag, ok := searchCategories[category]
	return tag, ok
}
