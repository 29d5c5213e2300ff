package models

import "time"

type AuditLog struct {
	ID string `json:"id"`

	RequestID string `json:"request_id,omitempty"`
	Action    string `json:"action"`

	Entity   string `json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
