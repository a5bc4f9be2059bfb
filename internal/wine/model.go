package wine

import "time"

// Wine is a wine-list entry. IDs and timestamps are assigned by the
// database, never by the application.
type Wine struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Vintage     *int      `json:"vintage,omitempty"`
	Region      *string   `json:"region,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Is86d       bool      `json:"is_86d"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
