package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// AdjustmentUseCase expone las dos semánticas de escritura manual sobre el ledger:
// ajuste relativo (delta directo) y fijación absoluta (delta correctivo calculado).
// Ambas producen exactamente una entrada nueva; nunca mutan entradas previas.
type AdjustmentUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.InventoryItemRepository
	locationRepo repository.InventoryLocationRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	locationRepo repository.InventoryLocationRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
	}
}

// AdjustmentInput entrada de un ajuste manual. Target es un bucket del enum o el
// pseudo-destino onHand (que escribe en available).
type AdjustmentInput struct {
	InventoryItemID     int64
	InventoryLocationID int64
	Target              string
	Quantity            int64 // delta en Adjust; valor objetivo en SetAbsolute
	Note                string
}

// Adjust escribe una entrada con quantity = delta, directamente y sin bloqueo:
// una escritura relativa pura no tiene carrera de lectura-escritura.
func (uc *AdjustmentUseCase) Adjust(ctx context.Context, userID string, in AdjustmentInput) (*entity.InventoryTransaction, error) {
	bucket, _, err := entity.ResolveAdjustmentTarget(in.Target)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	trx := &entity.InventoryTransaction{
		InventoryItemID:     in.InventoryItemID,
		InventoryLocationID: in.InventoryLocationID,
		Bucket:              bucket,
		Quantity:            in.Quantity,
		MovementHash:        uuid.New().String(),
		Note:                in.Note,
		UserID:              userID,
		DateCreated:         time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(trxRepo repository.InventoryTransactionRepository) error {
		return trxRepo.Create(ctx, trx)
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// SetAbsolute fija el agregado de la clave en el valor objetivo escribiendo una única
// entrada correctiva. El delta se calcula dentro del mismo INSERT y los SetAbsolute
// concurrentes sobre la misma clave se serializan con un lock por clave, de modo que
// al confirmar la entrada el agregado queda exactamente en target.
func (uc *AdjustmentUseCase) SetAbsolute(ctx context.Context, userID string, in AdjustmentInput) (*entity.InventoryTransaction, error) {
	bucket, sumOver, err := entity.ResolveAdjustmentTarget(in.Target)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	draft := &entity.InventoryTransaction{
		InventoryItemID:     in.InventoryItemID,
		InventoryLocationID: in.InventoryLocationID,
		Bucket:              bucket,
		MovementHash:        uuid.New().String(),
		Note:                in.Note,
		UserID:              userID,
		DateCreated:         time.Now(),
	}
	var written *entity.InventoryTransaction
	err = uc.txRunner.Run(ctx, func(trxRepo repository.InventoryTransactionRepository) error {
		if err := trxRepo.LockKey(ctx, in.InventoryItemID, in.InventoryLocationID, bucket); err != nil {
			return err
		}
		trx, err := trxRepo.CreateAbsolute(ctx, draft, in.Quantity, sumOver)
		if err != nil {
			return err
		}
		written = trx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

func (uc *AdjustmentUseCase) checkReferences(ctx context.Context, in AdjustmentInput) error {
	item, err := uc.itemRepo.GetByID(ctx, in.InventoryItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(ctx, in.InventoryLocationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}
