package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// MovementRepository définit le port de persistance pour StockMovement.
type MovementRepository interface {
	Create(m *entity.StockMovement) error
	GetByID(id uint) (*entity.StockMovement, error)
	List() ([]*entity.StockMovement, error)
	ListByItem(itemID uint) ([]*entity.StockMovement, error)
	ListByTransaction(transactionID uint) ([]*entity.StockMovement, error)
	Update(m *entity.StockMovement) error
	Delete(id uint) error
	CountByItem(itemID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
}
