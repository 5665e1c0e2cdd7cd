package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// TypeRepository définit le port de persistance pour MaterialType.
type TypeRepository interface {
	Create(t *entity.MaterialType) error
	GetByID(id uint) (*entity.MaterialType, error)
	List() ([]*entity.MaterialType, error)
	Update(t *entity.MaterialType) error
	Delete(id uint) error
}
