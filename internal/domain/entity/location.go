package entity

import "time"

// Location représente un emplacement de stockage (rayonnage, zone, dépôt).
type Location struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName fixe le nom de table pour Location.
func (Location) TableName() string { return "locations" }
