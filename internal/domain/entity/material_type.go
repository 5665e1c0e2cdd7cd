package entity

import "time"

// MaterialType représente une catégorie de matière (kraft, testliner, …).
// ShortName alimente la synthèse du SKU côté formulaire de création d'article.
type MaterialType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	ShortName   string    `json:"short_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName fixe le nom de table pour MaterialType.
func (MaterialType) TableName() string { return "types" }
