package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implémentation du port ItemRepository sur SQLite.
// Les lectures chargent l'ensemble statique de relations de la ressource item :
// Type, Supplier, Location et StockMovements. Cet ensemble n'est pas
// configurable par l'appelant, pour garder une forme de réponse prévisible.
type ItemRepo struct {
	db *DB
}

// NewItemRepository construit l'adaptateur de persistance des articles.
func NewItemRepository(db *DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) withIncludes() *gorm.DB {
	return r.db.
		Preload("Type").
		Preload("Supplier").
		Preload("Location").
		Preload("StockMovements")
}

// Create persiste un nouvel article. Le SKU est unique globalement.
func (r *ItemRepo) Create(item *entity.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID renvoie l'article avec ses relations, ou nil s'il n'existe pas.
func (r *ItemRepo) GetByID(id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.withIncludes().First(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// GetBySKU renvoie l'article correspondant au SKU, ou nil si absent.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	var it entity.Item
	if err := r.withIncludes().Where("sku = ?", sku).First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by sku: %w", err)
	}
	return &it, nil
}

// GetByName renvoie le premier article portant ce nom, ou nil si absent.
// Utilisé par l'import de mouvements comme résolution de repli après le SKU.
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	var it entity.Item
	if err := r.withIncludes().Where("name = ?", name).First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return &it, nil
}

// List renvoie tous les articles avec leurs relations.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	var list []*entity.Item
	if err := r.withIncludes().Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un article existant.
func (r *ItemRepo) Update(item *entity.Item) error {
	if err := r.db.Omit("Type", "Supplier", "Location", "StockMovements").Save(item).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete supprime un article. Refusé tant que des mouvements le référencent :
// un journal ne doit jamais contenir de mouvements orphelins.
func (r *ItemRepo) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&entity.StockMovement{}).Where("item_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("count movements by item: %w", err)
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	res := r.db.Delete(&entity.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
