package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// UserRepository définit le port de persistance pour User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id uint) error
}
