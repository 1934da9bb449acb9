package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ItemUseCase casos de uso del registro de artículos.
type ItemUseCase struct {
	repo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo nuevo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.PurchasableID == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		PurchasableID:                  in.PurchasableID,
		CountryCodeOfOrigin:            in.CountryCodeOfOrigin,
		AdministrativeAreaCodeOfOrigin: in.AdministrativeAreaCodeOfOrigin,
		HarmonizedSystemCode:           in.HarmonizedSystemCode,
		CreatedAt:                      now,
		UpdatedAt:                      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update reescribe los campos descriptivos del artículo (save explícito; nunca cantidades).
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.CountryCodeOfOrigin != nil {
		item.CountryCodeOfOrigin = *in.CountryCodeOfOrigin
	}
	if in.AdministrativeAreaCodeOfOrigin != nil {
		item.AdministrativeAreaCodeOfOrigin = *in.AdministrativeAreaCodeOfOrigin
	}
	if in.HarmonizedSystemCode != nil {
		item.HarmonizedSystemCode = *in.HarmonizedSystemCode
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                             it.ID,
		PurchasableID:                  it.PurchasableID,
		CountryCodeOfOrigin:            it.CountryCodeOfOrigin,
		AdministrativeAreaCodeOfOrigin: it.AdministrativeAreaCodeOfOrigin,
		HarmonizedSystemCode:           it.HarmonizedSystemCode,
		CreatedAt:                      it.CreatedAt,
		UpdatedAt:                      it.UpdatedAt,
	}
}
