package categorizer

import "mbaxter/ledgerize/internal/models"

// KeywordRule pairs a category with the merchant keywords that imply it.
// Rule order follows the canonical category order and is the tie-break when
// several keyword lists match the same merchant: the earlier rule wins.
type KeywordRule struct {
	Category string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RulesConfig is the on-disk shape of a keyword rules file.
type RulesConfig struct {
	Categories []KeywordRule `yaml:"categories"`
}

// DefaultRules returns the built-in keyword table. Users may override it
// with a rules YAML file of the same shape.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Category: models.CategoryGroceries, Keywords: []string{
			"grocery", "supermarket", "safeway", "kroger", "trader joe",
			"whole foods", "aldi", "wegmans", "publix", "costco", "walmart",
			"food lion", "sprouts", "market basket",
		}},
		{Category: models.CategoryEatingOut, Keywords: []string{
			"restaurant", "cafe", "coffee", "starbucks", "dunkin", "pizza",
			"burger", "taco", "sushi", "grill", "diner", "mcdonald",
			"chipotle", "wendy", "doordash", "grubhub", "uber eats", "deli",
			"bbq", "noodle", "ramen",
		}},
		{Category: models.CategoryTransport, Keywords: []string{
			"shell", "chevron", "exxon", "mobil", "bp ", "gas", "fuel",
			"uber", "lyft", "parking", "transit", "metro", "toll", "amtrak",
			"car wash", "auto repair", "jiffy lube",
		}},
		{Category: models.CategoryHealth, Keywords: []string{
			"pharmacy", "cvs", "walgreens", "rite aid", "gym", "fitness",
			"yoga", "dental", "dentist", "clinic", "hospital", "urgent care",
			"optometr", "therapy", "chiropract",
		}},
		{Category: models.CategoryShopping, Keywords: []string{
			"amazon", "target", "best buy", "ebay", "etsy", "nordstrom",
			"macy", "kohl", "home depot", "lowe's", "ikea", "rei", "nike",
			"apple store", "sephora",
		}},
		{Category: models.CategoryEntertainment, Keywords: []string{
			"cinema", "amc", "regal", "theater", "theatre", "concert",
			"ticketmaster", "stubhub", "steam", "playstation", "xbox",
			"nintendo", "bowling", "arcade", "museum",
		}},
		{Category: models.CategoryUtilities, Keywords: []string{
			"electric", "energy", "water dept", "sewer", "internet",
			"comcast", "xfinity", "verizon", "t-mobile", "at&t", "utility",
			"utilities", "insurance", "waste management",
		}},
		{Category: models.CategoryRent, Keywords: []string{
			"rent", "mortgage", "apartment", "property management",
			"landlord", "hoa", "realty",
		}},
		{Category: models.CategoryTravel, Keywords: []string{
			"airline", "airlines", "airways", "hotel", "airbnb", "vrbo",
			"delta", "united air", "southwest", "jetblue", "alaska air",
			"marriott", "hilton", "hyatt", "expedia", "booking.com",
			"rental car", "hertz", "enterprise rent",
		}},
		{Category: models.CategorySubscriptions, Keywords: []string{
			"netflix", "spotify", "hulu", "disney+", "hbo", "paramount+",
			"audible", "patreon", "icloud", "dropbox", "youtube premium",
			"prime video", "subscription", "membership",
		}},
		{Category: models.CategoryEducation, Keywords: []string{
			"tuition", "university", "college", "school", "udemy",
			"coursera", "textbook", "campus",
		}},
	}
}
