package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryLocationRepository puerto del registro de ubicaciones de stock.
// El ciclo de vida pertenece al registro; el motor solo lee.
type InventoryLocationRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.InventoryLocation, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryLocation, error)
	ListByStore(ctx context.Context, storeID int64) ([]*entity.InventoryLocation, error)
	// ListIDs devuelve todos los IDs conocidos, para el relleno con ceros del agregador.
	ListIDs(ctx context.Context) ([]int64, error)
}
