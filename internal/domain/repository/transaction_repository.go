package repository

import "github.com/tdiallo/papistock-api/internal/domain/entity"

// TransactionRepository définit le port de persistance pour Transaction
// (lot de mouvements). Delete supprime aussi les mouvements du lot (cascade).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id uint) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id uint) error
}
