package usecase

import (
	"strings"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
)

// LocationUseCase opérations CRUD sur les emplacements.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construit le cas d'usage.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create valide et persiste un emplacement.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*entity.Location, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.Location{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetByID renvoie l'emplacement ou nil.
func (uc *LocationUseCase) GetByID(id uint) (*entity.Location, error) {
	return uc.repo.GetByID(id)
}

// List renvoie tous les emplacements.
func (uc *LocationUseCase) List() ([]*entity.Location, error) {
	return uc.repo.List()
}

// Update fusionne les champs fournis et persiste.
func (uc *LocationUseCase) Update(id uint, in dto.UpdateLocationRequest) (*entity.Location, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		l.Name = *in.Name
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if err := uc.repo.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete supprime un emplacement (refusé s'il est référencé).
func (uc *LocationUseCase) Delete(id uint) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
