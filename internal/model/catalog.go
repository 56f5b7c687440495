package model

// MenuItem is one row of the warehouse menu table.
type MenuItem struct {
	Name  string  `json:"name" gorm:"primaryKey;column:name" bigquery:"name"`
	Price float64 `json:"price" gorm:"column:price" bigquery:"price"`
}

// MenuResult carries the menu or, when the table is empty, a human-readable
// message the agent can relay verbatim.
type MenuResult struct {
	Items   []MenuItem `json:"items,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Promo is the row shape used by the local warehouse for migration and
// seeding. BigQuery promo lookups stay an opaque column passthrough because
// the remote table may carry extra columns this service does not know about.
type Promo struct {
	PromoCode       string  `json:"promo_code" gorm:"primaryKey;column:promo_code"`
	Description     string  `json:"description" gorm:"column:description"`
	DiscountPercent float64 `json:"discount_percent" gorm:"column:discount_percent"`
}
