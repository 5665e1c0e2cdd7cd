package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// ItemRepository définit le port de persistance pour Item.
// GetByID/List/GetBySKU chargent l'ensemble statique de relations déclaré
// pour la ressource (Type, Supplier, Location, StockMovements).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id uint) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id uint) error
}
