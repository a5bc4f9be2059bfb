package cocktail

import "time"

// Cocktail is a bar-list entry.
type Cocktail struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Ingredients string    `json:"ingredients"`
	Recipe      *string   `json:"recipe,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Type        *string   `json:"type,omitempty"`
	IsSignature bool      `json:"is_signature"`
	Is86d       bool      `json:"is_86d"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
