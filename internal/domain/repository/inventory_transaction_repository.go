package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryTransactionRepository puerto de persistencia del ledger de inventario.
// El store es append-only: no existen operaciones de update ni delete. Las escrituras
// son atómicas cuando el repositorio está atado a una transacción (ver TxRunner).
type InventoryTransactionRepository interface {
	// Create agrega una entrada inmutable al ledger.
	Create(ctx context.Context, trx *entity.InventoryTransaction) error
	// CreateAll agrega varias entradas; dentro de una tx, todas o ninguna.
	CreateAll(ctx context.Context, trxs []*entity.InventoryTransaction) error
	// CreateAbsolute agrega una entrada cuyo quantity es target menos la suma actual
	// de los buckets indicados, calculado dentro del mismo INSERT (delta correctivo).
	// Devuelve la entrada escrita con ID y Quantity resueltos.
	CreateAbsolute(ctx context.Context, draft *entity.InventoryTransaction, target int64, sumOver []entity.Bucket) (*entity.InventoryTransaction, error)
	// LockKey serializa los SetAbsolute concurrentes sobre la misma clave
	// (artículo, ubicación, bucket) mientras dure la transacción actual.
	LockKey(ctx context.Context, itemID, locationID int64, bucket entity.Bucket) error

	// SumByBucket suma quantity agrupado por bucket para un (artículo, ubicación).
	SumByBucket(ctx context.Context, itemID, locationID int64) (map[entity.Bucket]int64, error)
	// SumByLocationAndBucket suma quantity agrupado por (ubicación, bucket) para un artículo.
	SumByLocationAndBucket(ctx context.Context, itemID int64) (map[int64]map[entity.Bucket]int64, error)
	// SumByItemAndBucket suma quantity agrupado por (artículo, bucket) para una ubicación.
	SumByItemAndBucket(ctx context.Context, locationID int64) (map[int64]map[entity.Bucket]int64, error)
	// SumForBuckets suma quantity sobre un conjunto de buckets de una clave.
	SumForBuckets(ctx context.Context, itemID, locationID int64, buckets []entity.Bucket) (int64, error)
	// SumByLineItem suma quantity de las entradas del bucket etiquetadas con una línea de orden.
	SumByLineItem(ctx context.Context, itemID, locationID, lineItemID int64, bucket entity.Bucket) (int64, error)
	// ListByMovementHash devuelve las entradas que comparten un movement hash (auditoría).
	ListByMovementHash(ctx context.Context, movementHash string) ([]*entity.InventoryTransaction, error)
}
