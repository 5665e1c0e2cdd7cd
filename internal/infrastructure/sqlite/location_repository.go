package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implémentation du port LocationRepository sur SQLite.
type LocationRepo struct {
	db *DB
}

// NewLocationRepository construit l'adaptateur de persistance des emplacements.
func NewLocationRepository(db *DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// Create persiste un nouvel emplacement.
func (r *LocationRepo) Create(location *entity.Location) error {
	if err := r.db.Create(location).Error; err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID renvoie l'emplacement ou nil s'il n'existe pas.
func (r *LocationRepo) GetByID(id uint) (*entity.Location, error) {
	var l entity.Location
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List renvoie tous les emplacements.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	var list []*entity.Location
	if err := r.db.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un emplacement existant.
func (r *LocationRepo) Update(location *entity.Location) error {
	if err := r.db.Save(location).Error; err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete supprime un emplacement. Refusé tant que des articles le référencent.
func (r *LocationRepo) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&entity.Item{}).Where("location_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("count items by location: %w", err)
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	res := r.db.Delete(&entity.Location{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
