package store

import (
	"encoding/json"
	"time"
)

// Record is one row of the data_objects table.
// Data holds the class specific fields as a JSON document.
type Record struct {
	ID        int             `json:"id"`
	Class     string          `json:"class"`
	Key       string          `json:"key"`
	Path      string          `json:"path"`
	Published bool            `json:"published"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
