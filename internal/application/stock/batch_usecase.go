package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// BatchUseCase gère les lots de mouvements : un bon de réception (lignes IN,
// positives) ou un bon de consommation (lignes OUT, négativées à l'écriture).
// La création d'un lot est atomique : l'en-tête et toutes ses lignes sont
// persistés ensemble, ou rien ne l'est.
type BatchUseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
	itemRepo repository.ItemRepository
}

// NewBatchUseCase construit le cas d'usage.
func NewBatchUseCase(txRunner TxRunner, txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) *BatchUseCase {
	return &BatchUseCase{txRunner: txRunner, txRepo: txRepo, itemRepo: itemRepo}
}

// newReference génère un code court de lot (8 premiers caractères d'un UUID).
func newReference() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// validateLines vérifie que chaque ligne est saisie positive et cible un
// article existant ; la moindre ligne invalide fait échouer le lot entier.
func (uc *BatchUseCase) validateLines(itemRepo repository.ItemRepository, lines []dto.BatchLine) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if line.Weight != nil && line.Weight.IsNegative() {
			return domain.ErrInvalidInput
		}
		item, err := itemRepo.GetByID(line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// signLine convertit une saisie positive en ligne signée du journal.
func signLine(batchType string, line dto.BatchLine, date time.Time, userID *uint) entity.StockMovement {
	m := entity.StockMovement{
		ItemID:   line.ItemID,
		Quantity: line.Quantity,
		Weight:   line.Weight,
		Date:     date, // les lignes partagent la date du lot (convention)
		Notes:    line.Notes,
		UserID:   userID,
	}
	if batchType == entity.TransactionTypeConsommation {
		m.Type = entity.MovementTypeOut
		m.Quantity = -line.Quantity
		if line.Weight != nil {
			neg := line.Weight.Neg()
			m.Weight = &neg
		}
	} else {
		m.Type = entity.MovementTypeIn
	}
	return m
}

// CreateReception crée un bon de réception : en-tête + une ligne IN par ligne
// saisie, le tout dans une transaction du magasin.
func (uc *BatchUseCase) CreateReception(ctx context.Context, in dto.CreateBatchRequest) (*entity.Transaction, error) {
	return uc.create(ctx, entity.TransactionTypeReception, in)
}

// CreateConsumption crée un bon de consommation : chaque ligne devient un
// mouvement OUT avec quantité et poids négativés.
func (uc *BatchUseCase) CreateConsumption(ctx context.Context, in dto.CreateBatchRequest) (*entity.Transaction, error) {
	return uc.create(ctx, entity.TransactionTypeConsommation, in)
}

func (uc *BatchUseCase) create(ctx context.Context, batchType string, in dto.CreateBatchRequest) (*entity.Transaction, error) {
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	header := &entity.Transaction{
		Type:       batchType,
		Reference:  newReference(),
		Date:       date,
		Notes:      in.Notes,
		SupplierID: in.SupplierID,
		UserID:     in.UserID,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := uc.validateLines(itemRepo, in.Lines); err != nil {
			return err
		}
		if err := txRepo.Create(header); err != nil {
			return err
		}
		for _, line := range in.Lines {
			m := signLine(batchType, line, date, in.UserID)
			m.TransactionID = &header.ID
			if err := movRepo.Create(&m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.txRepo.GetByID(header.ID)
}

// GetByID renvoie le lot ou nil.
func (uc *BatchUseCase) GetByID(id uint) (*entity.Transaction, error) {
	return uc.txRepo.GetByID(id)
}

// List renvoie tous les lots.
func (uc *BatchUseCase) List() ([]*entity.Transaction, error) {
	return uc.txRepo.List()
}

// UpdateHeader fusionne les champs d'en-tête d'un lot existant (pas les lignes).
func (uc *BatchUseCase) UpdateHeader(id uint, date *time.Time, notes *string, supplierID *uint) (*entity.Transaction, error) {
	header, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	if date != nil {
		header.Date = *date
	}
	if notes != nil {
		header.Notes = *notes
	}
	if supplierID != nil {
		header.SupplierID = supplierID
	}
	if err := uc.txRepo.Update(header); err != nil {
		return nil, err
	}
	return uc.txRepo.GetByID(id)
}

// Delete supprime le lot et, en cascade, toutes ses lignes.
func (uc *BatchUseCase) Delete(id uint) error {
	header, err := uc.txRepo.GetByID(id)
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}
	return uc.txRepo.Delete(id)
}
