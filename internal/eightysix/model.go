package eightysix

import "time"

// Item is one 86 event. The log is append-only; nothing in the system
// ever edits or removes an entry.
type Item struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"item_name"`
	ItemType  string    `json:"item_type"`
	ItemID    *string   `json:"item_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}
