package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.TypeRepository = (*TypeRepo)(nil)

// TypeRepo implémentation du port TypeRepository sur SQLite.
type TypeRepo struct {
	db *DB
}

// NewTypeRepository construit l'adaptateur de persistance des types de matière.
func NewTypeRepository(db *DB) *TypeRepo {
	return &TypeRepo{db: db}
}

// Create persiste un nouveau type.
func (r *TypeRepo) Create(t *entity.MaterialType) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("insert type: %w", err)
	}
	return nil
}

// GetByID renvoie le type ou nil s'il n'existe pas.
func (r *TypeRepo) GetByID(id uint) (*entity.MaterialType, error) {
	var t entity.MaterialType
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type: %w", err)
	}
	return &t, nil
}

// List renvoie tous les types.
func (r *TypeRepo) List() ([]*entity.MaterialType, error) {
	var list []*entity.MaterialType
	if err := r.db.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un type existant.
func (r *TypeRepo) Update(t *entity.MaterialType) error {
	if err := r.db.Save(t).Error; err != nil {
		return fmt.Errorf("update type: %w", err)
	}
	return nil
}

// Delete supprime un type. Refusé tant que des articles le référencent.
func (r *TypeRepo) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&entity.Item{}).Where("type_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("count items by type: %w", err)
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	res := r.db.Delete(&entity.MaterialType{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
