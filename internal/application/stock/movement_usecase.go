package stock

import (
	"time"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// MovementUseCase opérations sur les lignes de journal isolées (hors lot).
// Le signe est appliqué à l'écriture : la saisie est positive, le sens est
// porté par Type. C'est le seul endroit qui décide du signe ; l'agrégateur
// ne fait ensuite qu'une somme brute.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construit le cas d'usage.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// Create valide et persiste une ligne. Quantity doit être saisie strictement
// positive ; les lignes OUT sont stockées négatives.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*entity.StockMovement, error) {
	if in.ItemID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Weight != nil && in.Weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	m := &entity.StockMovement{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Weight:   in.Weight,
		Date:     date,
		Notes:    in.Notes,
		UserID:   in.UserID,
	}
	if in.Type == entity.MovementTypeOut {
		m.Quantity = -in.Quantity
		if in.Weight != nil {
			neg := in.Weight.Neg()
			m.Weight = &neg
		}
	}

	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByID renvoie la ligne ou nil.
func (uc *MovementUseCase) GetByID(id uint) (*entity.StockMovement, error) {
	return uc.repo.GetByID(id)
}

// List renvoie tout le journal.
func (uc *MovementUseCase) List() ([]*entity.StockMovement, error) {
	return uc.repo.List()
}

// Update fusionne les champs fournis. Une nouvelle quantité est saisie
// positive et re-signée selon le type existant de la ligne.
func (uc *MovementUseCase) Update(id uint, in dto.UpdateMovementRequest) (*entity.StockMovement, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		m.Quantity = *in.Quantity
		if m.Type == entity.MovementTypeOut {
			m.Quantity = -*in.Quantity
		}
	}
	if in.Weight != nil {
		if in.Weight.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		w := *in.Weight
		if m.Type == entity.MovementTypeOut {
			w = w.Neg()
		}
		m.Weight = &w
	}
	if in.Date != nil {
		m.Date = *in.Date
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete supprime une ligne de journal.
func (uc *MovementUseCase) Delete(id uint) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
