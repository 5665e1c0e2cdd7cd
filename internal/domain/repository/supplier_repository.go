package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// SupplierRepository définit le port de persistance pour Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id uint) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id uint) error
}
