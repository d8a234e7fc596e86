package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a car registered by a trip provider
type Vehicle struct {
	ID           uuid.UUID `json:"id" db:"id"`
	OwnerID      uuid.UUID `json:"owner_id" db:"owner_id"`
	Brand        string    `json:"brand" db:"brand"`
	Model        string    `json:"model" db:"model"`
	LicensePlate string    `json:"license_plate" db:"license_plate"`
	Color        string    `json:"color" db:"color"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
