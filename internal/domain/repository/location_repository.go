package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// LocationRepository définit le port de persistance pour Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id uint) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id uint) error
}
