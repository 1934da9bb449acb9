package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MovementUseCase ejecuta lotes de movimientos: por cada movimiento, un par
// débito/crédito con movement hash compartido, todo el lote en una sola transacción.
type MovementUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.InventoryItemRepository
	locationRepo repository.InventoryLocationRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	locationRepo repository.InventoryLocationRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
	}
}

// ExecuteMovements valida el lote completo y luego escribe todas las entradas dentro
// de una transacción. Cualquier fallo de validación aborta el lote entero sin
// escritura parcial; un error de almacenamiento revierte todo el lote.
func (uc *MovementUseCase) ExecuteMovements(ctx context.Context, userID string, movements []entity.Movement) error {
	if len(movements) == 0 {
		return domain.ErrInvalidInput
	}
	for i := range movements {
		movements[i].UserID = userID
		if err := movements[i].Validate(); err != nil {
			return err
		}
	}
	if err := uc.checkReferences(ctx, movements); err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(trxRepo repository.InventoryTransactionRepository) error {
		entries := make([]*entity.InventoryTransaction, 0, len(movements)*2)
		for _, m := range movements {
			entries = append(entries, m.Entries(uuid.New().String(), now)...)
		}
		return trxRepo.CreateAll(ctx, entries)
	})
}

// checkReferences verifica que artículo y ubicaciones de cada movimiento existan en el registro.
func (uc *MovementUseCase) checkReferences(ctx context.Context, movements []entity.Movement) error {
	seenItems := make(map[int64]bool)
	seenLocations := make(map[int64]bool)
	for _, m := range movements {
		if !seenItems[m.InventoryItemID] {
			item, err := uc.itemRepo.GetByID(ctx, m.InventoryItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			seenItems[m.InventoryItemID] = true
		}
		for _, locID := range []int64{m.FromLocationID, m.ToLocationID} {
			if seenLocations[locID] {
				continue
			}
			loc, err := uc.locationRepo.GetByID(ctx, locID)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.ErrNotFound
			}
			seenLocations[locID] = true
		}
	}
	return nil
}
