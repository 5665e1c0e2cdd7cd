package usecase

import (
	"strings"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// TypeUseCase opérations CRUD sur les types de matière.
type TypeUseCase struct {
	repo repository.TypeRepository
}

// NewTypeUseCase construit le cas d'usage.
func NewTypeUseCase(repo repository.TypeRepository) *TypeUseCase {
	return &TypeUseCase{repo: repo}
}

// Create valide et persiste un type.
func (uc *TypeUseCase) Create(in dto.CreateTypeRequest) (*entity.MaterialType, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.MaterialType{Name: in.Name, ShortName: in.ShortName, Description: in.Description}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID renvoie le type ou nil.
func (uc *TypeUseCase) GetByID(id uint) (*entity.MaterialType, error) {
	return uc.repo.GetByID(id)
}

// List renvoie tous les types.
func (uc *TypeUseCase) List() ([]*entity.MaterialType, error) {
	return uc.repo.List()
}

// Update fusionne les champs fournis et persiste.
func (uc *TypeUseCase) Update(id uint, in dto.UpdateTypeRequest) (*entity.MaterialType, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Name = *in.Name
	}
	if in.ShortName != nil {
		t.ShortName = *in.ShortName
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete supprime un type (refusé s'il est référencé).
func (uc *TypeUseCase) Delete(id uint) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
