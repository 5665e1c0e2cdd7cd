package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation du port UserRepository sur SQLite.
type UserRepo struct {
	db *DB
}

// NewUserRepository construit l'adaptateur de persistance des utilisateurs.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nouvel utilisateur. L'email est unique.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID renvoie l'utilisateur ou nil s'il n'existe pas.
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByEmail renvoie l'utilisateur ou nil si l'email est inconnu.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// List renvoie tous les utilisateurs.
func (r *UserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	if err := r.db.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// Update persiste les champs modifiés d'un utilisateur existant.
func (r *UserRepo) Update(user *entity.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete supprime un utilisateur par ID.
func (r *UserRepo) Delete(id uint) error {
	res := r.db.Delete(&entity.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
