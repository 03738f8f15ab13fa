package models

// Collection is the full persisted record set. It is read once at startup and
// written back after every mutation; no other component keeps a live
// reference across mutations.
type Collection struct {
	Transactions []Transaction `json:"transactions"`
	Paychecks    []Paycheck    `json:"paychecks"`
}

// CategorySummary is a derived view of one category's spending within a
// month. It is recomputed on every read and never persisted.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	Color    string  `json:"color"`
}
