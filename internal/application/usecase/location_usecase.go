package usecase

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// LocationUseCase lecturas del registro de ubicaciones (el ciclo de vida es del registro).
type LocationUseCase struct {
	repo repository.InventoryLocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.InventoryLocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(loc), nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(ctx context.Context, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	locations := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		locations = append(locations, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Locations: locations,
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByStore lista las ubicaciones de una tienda.
func (uc *LocationUseCase) ListByStore(ctx context.Context, storeID int64) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	locations := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		locations = append(locations, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Locations: locations}, nil
}

func toLocationResponse(l *entity.InventoryLocation) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		StoreID:   l.StoreID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
