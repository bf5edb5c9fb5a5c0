package model

import "time"

// Base contains common fields for all persisted models. IDs are generated
// by the database and never change once assigned.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
