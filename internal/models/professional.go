package models

import "time"

// Professional is the persisted shape of a registered professional.
type Professional struct {
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
	AuditFields
}
