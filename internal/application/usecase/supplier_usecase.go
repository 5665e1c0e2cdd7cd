package usecase

import (
	"strings"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// SupplierUseCase opérations CRUD sur les fournisseurs.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construit le cas d'usage.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create valide et persiste un fournisseur.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{Name: in.Name, ShortName: in.ShortName, Origin: in.Origin}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID renvoie le fournisseur ou nil.
func (uc *SupplierUseCase) GetByID(id uint) (*entity.Supplier, error) {
	return uc.repo.GetByID(id)
}

// List renvoie tous les fournisseurs.
func (uc *SupplierUseCase) List() ([]*entity.Supplier, error) {
	return uc.repo.List()
}

// Update fusionne les champs fournis et persiste. ErrNotFound si l'ID est inconnu.
func (uc *SupplierUseCase) Update(id uint, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Name = *in.Name
	}
	if in.ShortName != nil {
		s.ShortName = *in.ShortName
	}
	if in.Origin != nil {
		s.Origin = *in.Origin
	}
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete supprime un fournisseur (refusé s'il est référencé).
func (uc *SupplierUseCase) Delete(id uint) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
