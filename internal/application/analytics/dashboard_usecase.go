// Package analytics agrège les chiffres du tableau de bord.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	domstock "github.com/tdiallo/papistock-api/internal/domain/stock"
)

// DashboardUseCase calcule les agrégats affichés sur la page d'accueil :
// compteurs, solde global dérivé du journal, articles sous seuil et derniers
// mouvements.
type DashboardUseCase struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	locations repository.LocationRepository
	movements repository.MovementRepository
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	locations repository.LocationRepository,
	movements repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{items: items, suppliers: suppliers, locations: locations, movements: movements}
}

// recentLimit nombre de mouvements récents affichés.
const recentLimit = 10

// Summary calcule le tableau de bord. Tous les soldes sont recalculés à la
// lecture ; aucun compteur stocké.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locations.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		ItemCount:     int64(len(items)),
		SupplierCount: int64(len(suppliers)),
		LocationCount: int64(len(locations)),
		TotalWeight:   decimal.Zero,
	}

	for _, it := range items {
		qty := domstock.CurrentQuantity(it.StockMovements)
		out.TotalQuantity += qty
		out.TotalWeight = out.TotalWeight.Add(domstock.CurrentWeight(it.StockMovements))
		if domstock.IsLowStock(it, it.StockMovements) {
			out.LowStockItems = append(out.LowStockItems, dto.ItemResponse{
				Item:            *it,
				CurrentQuantity: qty,
				CurrentWeight:   domstock.CurrentWeight(it.StockMovements),
				LowStock:        true,
			})
		}
	}

	if len(movements) > recentLimit {
		movements = movements[:recentLimit]
	}
	out.RecentMovements = movements

	return out, nil
}
