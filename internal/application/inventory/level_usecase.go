package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// LevelUseCase responde "cuánto hay ahora" plegando el ledger: sumas agrupadas por
// bucket más un relleno explícito con ceros para cada par (artículo, ubicación)
// conocido por el registro, aunque no tenga entradas.
type LevelUseCase struct {
	trxRepo      repository.InventoryTransactionRepository
	itemRepo     repository.InventoryItemRepository
	locationRepo repository.InventoryLocationRepository
}

// NewLevelUseCase construye el caso de uso.
func NewLevelUseCase(
	trxRepo repository.InventoryTransactionRepository,
	itemRepo repository.InventoryItemRepository,
	locationRepo repository.InventoryLocationRepository,
) *LevelUseCase {
	return &LevelUseCase{
		trxRepo:      trxRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
	}
}

// LevelForItemAtLocation nivel actual de un artículo en una ubicación concreta.
// Sin entradas no es un error: devuelve un nivel con todos los buckets en cero.
func (uc *LevelUseCase) LevelForItemAtLocation(ctx context.Context, itemID, locationID int64) (*entity.InventoryLevel, error) {
	if err := uc.checkItem(ctx, itemID); err != nil {
		return nil, err
	}
	if err := uc.checkLocation(ctx, locationID); err != nil {
		return nil, err
	}
	sums, err := uc.trxRepo.SumByBucket(ctx, itemID, locationID)
	if err != nil {
		return nil, err
	}
	return entity.NewInventoryLevel(itemID, locationID, sums), nil
}

// LevelsForItem niveles del artículo en todas las ubicaciones conocidas por el
// registro, con fila en cero para las ubicaciones sin entradas.
func (uc *LevelUseCase) LevelsForItem(ctx context.Context, itemID int64) (map[int64]*entity.InventoryLevel, error) {
	if err := uc.checkItem(ctx, itemID); err != nil {
		return nil, err
	}
	sums, err := uc.trxRepo.SumByLocationAndBucket(ctx, itemID)
	if err != nil {
		return nil, err
	}
	locationIDs, err := uc.locationRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	levels := make(map[int64]*entity.InventoryLevel, len(locationIDs))
	for _, locID := range locationIDs {
		levels[locID] = entity.NewInventoryLevel(itemID, locID, sums[locID])
	}
	return levels, nil
}

// LevelsForLocation niveles de todos los artículos conocidos en una ubicación,
// con fila en cero para los artículos sin entradas allí.
func (uc *LevelUseCase) LevelsForLocation(ctx context.Context, locationID int64) (map[int64]*entity.InventoryLevel, error) {
	if err := uc.checkLocation(ctx, locationID); err != nil {
		return nil, err
	}
	sums, err := uc.trxRepo.SumByItemAndBucket(ctx, locationID)
	if err != nil {
		return nil, err
	}
	itemIDs, err := uc.itemRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	levels := make(map[int64]*entity.InventoryLevel, len(itemIDs))
	for _, itemID := range itemIDs {
		levels[itemID] = entity.NewInventoryLevel(itemID, locationID, sums[itemID])
	}
	return levels, nil
}

// MovementEntries entradas del ledger que comparten un movement hash (auditoría).
func (uc *LevelUseCase) MovementEntries(ctx context.Context, movementHash string) ([]*entity.InventoryTransaction, error) {
	if movementHash == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.trxRepo.ListByMovementHash(ctx, movementHash)
}

func (uc *LevelUseCase) checkItem(ctx context.Context, itemID int64) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *LevelUseCase) checkLocation(ctx context.Context, locationID int64) error {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}
