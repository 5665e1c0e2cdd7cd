package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implémentation du port MovementRepository sur SQLite.
// La ressource stockmovement charge statiquement sa relation Item.
type MovementRepo struct {
	db *DB
}

// NewMovementRepository construit l'adaptateur de persistance des mouvements.
func NewMovementRepository(db *DB) *MovementRepo {
	return &MovementRepo{db: db}
}

// Create persiste une ligne de journal. ItemID doit référencer un article
// existant (contrainte relationnelle du magasin).
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	var count int64
	if err := r.db.Model(&entity.Item{}).Where("id = ?", m.ItemID).Count(&count).Error; err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	if err := r.db.Create(m).Error; err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID renvoie le mouvement avec son article, ou nil s'il n'existe pas.
func (r *MovementRepo) GetByID(id uint) (*entity.StockMovement, error) {
	var m entity.StockMovement
	if err := r.db.Preload("Item").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List renvoie tout le journal, ligne la plus récente en premier.
func (r *MovementRepo) List() ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	if err := r.db.Preload("Item").Order("date DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}

// ListByItem renvoie les mouvements d'un article.
func (r *MovementRepo) ListByItem(itemID uint) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	if err := r.db.Where("item_id = ?", itemID).Order("date, id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return list, nil
}

// ListByTransaction renvoie les lignes d'un lot.
func (r *MovementRepo) ListByTransaction(transactionID uint) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	if err := r.db.Where("transaction_id = ?", transactionID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movements by transaction: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un mouvement existant.
func (r *MovementRepo) Update(m *entity.StockMovement) error {
	if err := r.db.Omit("Item", "User").Save(m).Error; err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete supprime un mouvement par ID.
func (r *MovementRepo) Delete(id uint) error {
	res := r.db.Delete(&entity.StockMovement{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete movement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByItem compte les mouvements référençant un article.
func (r *MovementRepo) CountByItem(itemID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&entity.StockMovement{}).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count movements by item: %w", err)
	}
	return count, nil
}

// CountByUser compte les mouvements attribués à un utilisateur.
func (r *MovementRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&entity.StockMovement{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count movements by user: %w", err)
	}
	return count, nil
}
