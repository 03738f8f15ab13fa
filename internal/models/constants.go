package models

// Category labels form a closed set. The declaration order is meaningful:
// it is the keyword tie-break order and the display order for summaries.
const (
	CategoryGroceries     = "Food & Groceries"
	CategoryEatingOut     = "Eating Out"
	CategoryTransport     = "Transport & Fuel"
	CategoryHealth        = "Health & Wellness"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities & Bills"
	CategoryRent          = "Rent/Mortgage"
	CategoryTravel        = "Travel"
	CategoryUnknown       = "Unknown"
	CategorySubscriptions = "Subscriptions"
	CategoryEducation     = "Education"
	CategoryPayment       = "Payment/Credit"
)

// CategoryOrder lists every category in canonical order.
var CategoryOrder = []string{
	CategoryGroceries,
	CategoryEatingOut,
	CategoryTransport,
	CategoryHealth,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryRent,
	CategoryTravel,
	CategoryUnknown,
	CategorySubscriptions,
	CategoryEducation,
	CategoryPayment,
}

// CategoryColors maps each category to its display color.
var CategoryColors = map[string]string{
	CategoryGroceries:     "#4caf50",
	CategoryEatingOut:     "#ff9800",
	CategoryTransport:     "#2196f3",
	CategoryHealth:        "#e91e63",
	CategoryShopping:      "#9c27b0",
	CategoryEntertainment: "#f44336",
	CategoryUtilities:     "#607d8b",
	CategoryRent:          "#795548",
	CategoryTravel:        "#00bcd4",
	CategoryUnknown:       "#9e9e9e",
	CategorySubscriptions: "#3f51b5",
	CategoryEducation:     "#8bc34a",
	CategoryPayment:       "#455a64",
}

// Paycheck source tags
const (
	SourceImported = "Imported"
	SourceOCR      = "OCR"
)

// Persistence slot keys. Each slot holds one JSON document.
const (
	SlotMappings = "merchant-mappings"
	SlotRecords  = "records"
)

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
)

// IsValidCategory reports whether name is a member of the closed category set.
func IsValidCategory(name string) bool {
	for _, c := range CategoryOrder {
		if c == name {
			return true
		}
	}
	return false
}
