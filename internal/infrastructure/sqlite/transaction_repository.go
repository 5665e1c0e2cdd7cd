package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implémentation du port TransactionRepository sur SQLite.
// La ressource transaction charge statiquement ses mouvements (avec article),
// son fournisseur et son utilisateur.
type TransactionRepo struct {
	db *DB
}

// NewTransactionRepository construit l'adaptateur de persistance des lots.
func NewTransactionRepository(db *DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

func (r *TransactionRepo) withIncludes() *gorm.DB {
	return r.db.
		Preload("StockMovements").
		Preload("StockMovements.Item").
		Preload("Supplier").
		Preload("User")
}

// Create persiste l'en-tête et, s'ils sont fournis, ses mouvements associés
// (GORM insère les lignes StockMovements avec le TransactionID).
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID renvoie le lot avec ses relations, ou nil s'il n'existe pas.
func (r *TransactionRepo) GetByID(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.withIncludes().First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List renvoie tous les lots, le plus récent en premier.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	if err := r.withIncludes().Order("date DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés de l'en-tête (pas les lignes : la
// réconciliation des lignes passe par le cas d'usage dédié).
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	if err := r.db.Omit("StockMovements", "Supplier", "User").Save(tx).Error; err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete supprime le lot ET ses mouvements — la seule relation en cascade du
// modèle. SQLite n'applique pas toujours la contrainte déclarée (foreign_keys
// off par défaut), donc la cascade est faite explicitement dans une tx.
func (r *TransactionRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Transaction{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete transaction: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Where("transaction_id = ?", id).Delete(&entity.StockMovement{}).Error; err != nil {
			return fmt.Errorf("delete transaction movements: %w", err)
		}
		return nil
	})
}
