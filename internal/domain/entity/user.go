package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User représente un utilisateur de l'application. Le mot de passe n'est
// jamais stocké en clair : PasswordHash contient l'empreinte bcrypt.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"` // admin | staff
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName fixe le nom de table pour User.
func (User) TableName() string { return "users" }
