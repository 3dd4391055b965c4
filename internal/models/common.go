package models

import "time"

// AuditFields holds last-write metadata shared by persisted records.
type AuditFields struct {
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy string    `json:"lastUpdatedBy" db:"last_updated_by"`
}
