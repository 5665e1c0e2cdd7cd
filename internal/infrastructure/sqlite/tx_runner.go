package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// TxRunner exécute des callbacks dans une transaction SQLite.
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner encapsule le DB pour ouvrir des transactions avec des repositories
// liés à la tx. Un lot de mouvements est ainsi persisté tout-ou-rien.
type TxRunner struct {
	db *DB
}

// NewTxRunner construit le runner.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run ouvre une transaction, exécute fn avec des repos attachés à la tx et
// fait Commit si fn réussit, Rollback sinon.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
) error) error {
	// gorm.Transaction fait Rollback si fn échoue, Commit sinon ;
	// l'erreur de fn est renvoyée telle quelle (les sentinelles de domaine survivent).
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDB := &DB{DB: tx, path: r.db.path}
		return fn(NewTransactionRepository(txDB), NewMovementRepository(txDB), NewItemRepository(txDB))
	})
}
