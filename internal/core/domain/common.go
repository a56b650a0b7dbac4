package domain

import "time"

// AuditFields carries creation and last-update attribution for persisted
// entities. Self-registered users reference themselves as creator.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
