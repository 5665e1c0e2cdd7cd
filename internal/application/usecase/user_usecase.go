package usecase

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// UserUseCase opérations CRUD sur les utilisateurs (actions admin).
type UserUseCase struct {
	repo    repository.UserRepository
	movRepo repository.MovementRepository
}

// NewUserUseCase construit le cas d'usage.
func NewUserUseCase(repo repository.UserRepository, movRepo repository.MovementRepository) *UserUseCase {
	return &UserUseCase{repo: repo, movRepo: movRepo}
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleStaff
}

// Create valide et persiste un utilisateur ; le mot de passe est haché (bcrypt).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*entity.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: in.Name, Role: in.Role, Email: in.Email, PasswordHash: string(hash)}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID renvoie l'utilisateur ou nil.
func (uc *UserUseCase) GetByID(id uint) (*entity.User, error) {
	return uc.repo.GetByID(id)
}

// List renvoie tous les utilisateurs.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.repo.List()
}

// Update fusionne les champs fournis ; un nouveau mot de passe est re-haché.
func (uc *UserUseCase) Update(id uint, in dto.UpdateUserRequest) (*entity.User, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Name = *in.Name
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete supprime un utilisateur. Refusé si des mouvements lui sont attribués :
// l'acteur d'une ligne de journal ne disparaît jamais en cascade.
func (uc *UserUseCase) Delete(id uint) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountByUser(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(id)
}
