package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryItemRepository puerto del registro de artículos (identidades; nunca cantidades).
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// Update reescribe solo los campos descriptivos (save explícito del registro).
	Update(ctx context.Context, item *entity.InventoryItem) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error)
	// ListIDs devuelve todos los IDs conocidos, para el relleno con ceros del agregador.
	ListIDs(ctx context.Context) ([]int64, error)
}
