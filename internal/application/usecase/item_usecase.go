package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	domstock "github.com/tdiallo/papistock-api/internal/domain/stock"
)

// ItemUseCase opérations sur les articles. La quantité et le poids courants
// sont toujours dérivés du journal au moment de la lecture ; la création peut
// semer un unique mouvement IN initial.
type ItemUseCase struct {
	repo     repository.ItemRepository
	txRunner appstock.TxRunner
}

// NewItemUseCase construit le cas d'usage.
func NewItemUseCase(repo repository.ItemRepository, txRunner appstock.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, txRunner: txRunner}
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		Item:            *it,
		CurrentQuantity: domstock.CurrentQuantity(it.StockMovements),
		CurrentWeight:   domstock.CurrentWeight(it.StockMovements),
		LowStock:        domstock.IsLowStock(it, it.StockMovements),
	}
}

// Create valide et persiste un article. Une quantité initiale non nulle sème
// un mouvement IN dans la même transaction que l'article.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SKU) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.Item{
		Name:         in.Name,
		Description:  in.Description,
		SKU:          in.SKU,
		Laise:        in.Laise,
		Grammage:     in.Grammage,
		ReorderLevel: in.ReorderLevel,
		TypeID:       in.TypeID,
		SupplierID:   in.SupplierID,
		LocationID:   in.LocationID,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if in.InitialQuantity == 0 {
			return nil
		}
		seed := &entity.StockMovement{
			ItemID:   item.ID,
			Type:     entity.MovementTypeIn,
			Quantity: in.InitialQuantity,
			Weight:   in.InitialWeight,
			Date:     time.Now(),
			Notes:    "stock initial",
		}
		return movRepo.Create(seed)
	})
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.GetByID(item.ID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(created), nil
}

// GetByID renvoie l'article avec son solde dérivé, ou nil.
func (uc *ItemUseCase) GetByID(id uint) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil || it == nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// GetBySKU recherche par SKU unique ; renvoie nil sans erreur si absent.
func (uc *ItemUseCase) GetBySKU(sku string) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetBySKU(sku)
	if err != nil || it == nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// List renvoie tous les articles avec leur solde dérivé.
func (uc *ItemUseCase) List() ([]*dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Update fusionne les champs fournis et persiste. La quantité courante n'est
// jamais écrite : elle reste dérivée du journal.
func (uc *ItemUseCase) Update(id uint, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.SKU != nil {
		if strings.TrimSpace(*in.SKU) == "" {
			return nil, domain.ErrInvalidInput
		}
		it.SKU = *in.SKU
	}
	if in.Laise != nil {
		it.Laise = *in.Laise
	}
	if in.Grammage != nil {
		it.Grammage = *in.Grammage
	}
	if in.ReorderLevel != nil {
		it.ReorderLevel = in.ReorderLevel
	}
	if in.TypeID != nil {
		it.TypeID = in.TypeID
	}
	if in.SupplierID != nil {
		it.SupplierID = in.SupplierID
	}
	if in.LocationID != nil {
		it.LocationID = in.LocationID
	}
	if err := uc.repo.Update(it); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Delete supprime un article (refusé s'il a des mouvements).
func (uc *ItemUseCase) Delete(id uint) error {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
