package items

import "time"

type Item struct {
	ID         int64     `json:"id"`
	ItemName   string    `json:"item_name"`
	Stock      int       `json:"stock"`
	Unit       string    `json:"unit"`
	ExternalID *int64    `json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// SyncItem is one entry of the external feed. The feed's id becomes our
// external_id.
type SyncItem struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	Stock    int    `json:"stock"`
	Unit     string `json:"unit"`
}
