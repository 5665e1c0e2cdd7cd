package stock

import (
	"context"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// UpdateLines réconcilie les lignes d'un lot existant avec une nouvelle liste,
// à trois voies plutôt que par destruction/recréation, pour que les
// identifiants de mouvement restent stables d'une édition à l'autre :
//   - ligne avec un ID connu  -> mise à jour en place ;
//   - ligne sans ID           -> création ;
//   - ID existant absent de la nouvelle liste -> suppression.
func (uc *BatchUseCase) UpdateLines(ctx context.Context, id uint, in dto.UpdateBatchLinesRequest) (*entity.Transaction, error) {
	header, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := uc.validateLines(itemRepo, in.Lines); err != nil {
			return err
		}

		existing, err := movRepo.ListByTransaction(id)
		if err != nil {
			return err
		}
		existingByID := make(map[uint]*entity.StockMovement, len(existing))
		for _, m := range existing {
			existingByID[m.ID] = m
		}

		kept := make(map[uint]bool, len(in.Lines))
		for _, line := range in.Lines {
			if line.ID != nil {
				current, ok := existingByID[*line.ID]
				if !ok {
					// Un ID qui n'appartient pas au lot est un conflit, pas une création.
					return domain.ErrConflict
				}
				signed := signLine(header.Type, line, header.Date, header.UserID)
				current.ItemID = signed.ItemID
				current.Quantity = signed.Quantity
				current.Weight = signed.Weight
				current.Notes = signed.Notes
				if err := movRepo.Update(current); err != nil {
					return err
				}
				kept[current.ID] = true
				continue
			}
			created := signLine(header.Type, line, header.Date, header.UserID)
			created.TransactionID = &header.ID
			if err := movRepo.Create(&created); err != nil {
				return err
			}
			kept[created.ID] = true
		}

		for _, m := range existing {
			if !kept[m.ID] {
				if err := movRepo.Delete(m.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.txRepo.GetByID(id)
}
