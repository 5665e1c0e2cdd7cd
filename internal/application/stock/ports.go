// Package stock (application) porte les écritures du journal : création de
// lots de réception/consommation et réconciliation des lignes d'un lot.
// Toute écriture multi-lignes passe par une transaction du magasin.
package stock

import (
	"context"

	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// TxRunner exécute fn dans une transaction du magasin, avec des repositories
// liés à la transaction. Commit si fn réussit, Rollback sinon.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
