package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implémentation du port SupplierRepository sur SQLite.
type SupplierRepo struct {
	db *DB
}

// NewSupplierRepository construit l'adaptateur de persistance des fournisseurs.
func NewSupplierRepository(db *DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persiste un nouveau fournisseur.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID renvoie le fournisseur ou nil s'il n'existe pas.
func (r *SupplierRepo) GetByID(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List renvoie tous les fournisseurs.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	if err := r.db.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un fournisseur existant.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete supprime un fournisseur. Refusé tant que des articles ou des
// transactions le référencent (politique restrictive, pas de mise à nil).
func (r *SupplierRepo) Delete(id uint) error {
	var itemCount int64
	if err := r.db.Model(&entity.Item{}).Where("supplier_id = ?", id).Count(&itemCount).Error; err != nil {
		return fmt.Errorf("count items by supplier: %w", err)
	}
	var txCount int64
	if err := r.db.Model(&entity.Transaction{}).Where("supplier_id = ?", id).Count(&txCount).Error; err != nil {
		return fmt.Errorf("count transactions by supplier: %w", err)
	}
	if itemCount > 0 || txCount > 0 {
		return domain.ErrReferenced
	}
	res := r.db.Delete(&entity.Supplier{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
