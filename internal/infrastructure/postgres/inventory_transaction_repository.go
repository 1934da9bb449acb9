package postgres

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo adaptador del ledger sobre PostgreSQL (usable con pool o tx).
// Solo inserta y agrega: la tabla inventory_transactions es append-only.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

const insertTransaction = `
	INSERT INTO inventory_transactions
		(inventory_item_id, inventory_location_id, type, quantity, movement_hash,
		 note, transfer_id, order_id, line_item_id, user_id, date_created)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id`

// Create agrega una entrada al ledger y resuelve su ID.
func (r *InventoryTransactionRepo) Create(ctx context.Context, trx *entity.InventoryTransaction) error {
	err := r.q.QueryRow(ctx, insertTransaction,
		trx.InventoryItemID, trx.InventoryLocationID, string(trx.Bucket), trx.Quantity,
		trx.MovementHash, nullIfEmpty(trx.Note), trx.TransferID, trx.OrderID,
		trx.LineItemID, nullIfEmpty(trx.UserID), trx.DateCreated,
	).Scan(&trx.ID)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// CreateAll agrega varias entradas. Dentro de una tx del TxRunner el lote es atómico.
func (r *InventoryTransactionRepo) CreateAll(ctx context.Context, trxs []*entity.InventoryTransaction) error {
	for _, trx := range trxs {
		if err := r.Create(ctx, trx); err != nil {
			return err
		}
	}
	return nil
}

// CreateAbsolute agrega la entrada correctiva de un SetAbsolute: quantity = target
// menos la suma actual de los buckets indicados, calculado por subconsulta
// correlacionada dentro del mismo INSERT (lectura y escritura en una sola sentencia).
func (r *InventoryTransactionRepo) CreateAbsolute(ctx context.Context, draft *entity.InventoryTransaction, target int64, sumOver []entity.Bucket) (*entity.InventoryTransaction, error) {
	query := `
		INSERT INTO inventory_transactions
			(inventory_item_id, inventory_location_id, type, quantity, movement_hash,
			 note, user_id, date_created)
		SELECT $1, $2, $3,
			$4 - COALESCE((
				SELECT SUM(quantity) FROM inventory_transactions
				WHERE inventory_item_id = $1 AND inventory_location_id = $2 AND type = ANY($5)
			), 0),
			$6, $7, $8, $9
		RETURNING id, quantity`
	buckets := make([]string, 0, len(sumOver))
	for _, b := range sumOver {
		buckets = append(buckets, string(b))
	}
	trx := *draft
	err := r.q.QueryRow(ctx, query,
		draft.InventoryItemID, draft.InventoryLocationID, string(draft.Bucket), target,
		buckets, draft.MovementHash, nullIfEmpty(draft.Note), nullIfEmpty(draft.UserID),
		draft.DateCreated,
	).Scan(&trx.ID, &trx.Quantity)
	if err != nil {
		return nil, fmt.Errorf("insert absolute transaction: %w", err)
	}
	return &trx, nil
}

// LockKey toma un advisory lock transaccional sobre la clave (artículo, ubicación,
// bucket). Serializa los SetAbsolute concurrentes de la misma clave; se libera solo
// al terminar la transacción.
func (r *InventoryTransactionRepo) LockKey(ctx context.Context, itemID, locationID int64, bucket entity.Bucket) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey(itemID, locationID, bucket)); err != nil {
		return fmt.Errorf("lock inventory key: %w", err)
	}
	return nil
}

// lockKey deriva el entero de 64 bits del advisory lock a partir de la clave.
func lockKey(itemID, locationID int64, bucket entity.Bucket) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%s", itemID, locationID, bucket)
	return int64(h.Sum64())
}

// SumByBucket suma quantity agrupado por bucket para un (artículo, ubicación).
func (r *InventoryTransactionRepo) SumByBucket(ctx context.Context, itemID, locationID int64) (map[entity.Bucket]int64, error) {
	query := `
		SELECT type, SUM(quantity)
		FROM inventory_transactions
		WHERE inventory_item_id = $1 AND inventory_location_id = $2
		GROUP BY type`
	rows, err := r.q.Query(ctx, query, itemID, locationID)
	if err != nil {
		return nil, fmt.Errorf("sum by bucket: %w", err)
	}
	defer rows.Close()
	sums := make(map[entity.Bucket]int64)
	for rows.Next() {
		var bucket string
		var total int64
		if err := rows.Scan(&bucket, &total); err != nil {
			return nil, fmt.Errorf("scan bucket sum: %w", err)
		}
		sums[entity.Bucket(bucket)] = total
	}
	return sums, rows.Err()
}

// SumByLocationAndBucket suma quantity agrupado por (ubicación, bucket) para un artículo.
func (r *InventoryTransactionRepo) SumByLocationAndBucket(ctx context.Context, itemID int64) (map[int64]map[entity.Bucket]int64, error) {
	query := `
		SELECT inventory_location_id, type, SUM(quantity)
		FROM inventory_transactions
		WHERE inventory_item_id = $1
		GROUP BY inventory_location_id, type`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("sum by location and bucket: %w", err)
	}
	defer rows.Close()
	return scanGroupedSums(rows)
}

// SumByItemAndBucket suma quantity agrupado por (artículo, bucket) para una ubicación.
func (r *InventoryTransactionRepo) SumByItemAndBucket(ctx context.Context, locationID int64) (map[int64]map[entity.Bucket]int64, error) {
	query := `
		SELECT inventory_item_id, type, SUM(quantity)
		FROM inventory_transactions
		WHERE inventory_location_id = $1
		GROUP BY inventory_item_id, type`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("sum by item and bucket: %w", err)
	}
	defer rows.Close()
	return scanGroupedSums(rows)
}

// SumForBuckets suma quantity sobre un conjunto de buckets de una clave.
func (r *InventoryTransactionRepo) SumForBuckets(ctx context.Context, itemID, locationID int64, bucketSet []entity.Bucket) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM inventory_transactions
		WHERE inventory_item_id = $1 AND inventory_location_id = $2 AND type = ANY($3)`
	buckets := make([]string, 0, len(bucketSet))
	for _, b := range bucketSet {
		buckets = append(buckets, string(b))
	}
	var total int64
	if err := r.q.QueryRow(ctx, query, itemID, locationID, buckets).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum for buckets: %w", err)
	}
	return total, nil
}

// SumByLineItem suma quantity de las entradas del bucket etiquetadas con una línea de orden.
func (r *InventoryTransactionRepo) SumByLineItem(ctx context.Context, itemID, locationID, lineItemID int64, bucket entity.Bucket) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM inventory_transactions
		WHERE inventory_item_id = $1 AND inventory_location_id = $2
		  AND line_item_id = $3 AND type = $4`
	var total int64
	if err := r.q.QueryRow(ctx, query, itemID, locationID, lineItemID, string(bucket)).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum by line item: %w", err)
	}
	return total, nil
}

// ListByMovementHash devuelve las entradas que comparten un movement hash, en orden de inserción.
func (r *InventoryTransactionRepo) ListByMovementHash(ctx context.Context, movementHash string) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT id, inventory_item_id, inventory_location_id, type, quantity,
		       movement_hash, note, transfer_id, order_id, line_item_id, user_id, date_created
		FROM inventory_transactions
		WHERE movement_hash = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, movementHash)
	if err != nil {
		return nil, fmt.Errorf("list by movement hash: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		var bucket string
		var note, userID *string
		if err := rows.Scan(&t.ID, &t.InventoryItemID, &t.InventoryLocationID, &bucket,
			&t.Quantity, &t.MovementHash, &note, &t.TransferID, &t.OrderID,
			&t.LineItemID, &userID, &t.DateCreated); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		t.Bucket = entity.Bucket(bucket)
		if note != nil {
			t.Note = *note
		}
		if userID != nil {
			t.UserID = *userID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// scanGroupedSums materializa filas (id, type, sum) en el mapa anidado por ID y bucket.
func scanGroupedSums(rows pgx.Rows) (map[int64]map[entity.Bucket]int64, error) {
	sums := make(map[int64]map[entity.Bucket]int64)
	for rows.Next() {
		var id int64
		var bucket string
		var total int64
		if err := rows.Scan(&id, &bucket, &total); err != nil {
			return nil, fmt.Errorf("scan grouped sum: %w", err)
		}
		if sums[id] == nil {
			sums[id] = make(map[entity.Bucket]int64)
		}
		sums[id][entity.Bucket(bucket)] = total
	}
	return sums, rows.Err()
}
