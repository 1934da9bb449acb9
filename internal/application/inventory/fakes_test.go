package inventory_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria — implementan los puertos de dominio sobre un slice,
// replicando la semántica append-only y las sumas agrupadas del adaptador real.
// ──────────────────────────────────────────────────────────────────────────────

var errFakeStorage = errors.New("fallo de almacenamiento simulado")

// fakeLedger ledger en memoria. failOnCreate permite simular un fallo de escritura
// en la n-ésima entrada para verificar la atomicidad del lote.
type fakeLedger struct {
	entries      []*entity.InventoryTransaction
	nextID       int64
	failOnCreate int // 0 = nunca; n>0 = falla la n-ésima escritura
	creates      int
}

var _ repository.InventoryTransactionRepository = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{nextID: 1}
}

func (f *fakeLedger) Create(_ context.Context, trx *entity.InventoryTransaction) error {
	f.creates++
	if f.failOnCreate > 0 && f.creates >= f.failOnCreate {
		return errFakeStorage
	}
	cp := *trx
	cp.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, &cp)
	trx.ID = cp.ID
	return nil
}

func (f *fakeLedger) CreateAll(ctx context.Context, trxs []*entity.InventoryTransaction) error {
	for _, trx := range trxs {
		if err := f.Create(ctx, trx); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeLedger) CreateAbsolute(ctx context.Context, draft *entity.InventoryTransaction, target int64, sumOver []entity.Bucket) (*entity.InventoryTransaction, error) {
	current, err := f.SumForBuckets(ctx, draft.InventoryItemID, draft.InventoryLocationID, sumOver)
	if err != nil {
		return nil, err
	}
	cp := *draft
	cp.Quantity = target - current
	if err := f.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (f *fakeLedger) LockKey(context.Context, int64, int64, entity.Bucket) error {
	return nil
}

func (f *fakeLedger) SumByBucket(_ context.Context, itemID, locationID int64) (map[entity.Bucket]int64, error) {
	sums := make(map[entity.Bucket]int64)
	for _, e := range f.entries {
		if e.InventoryItemID == itemID && e.InventoryLocationID == locationID {
			sums[e.Bucket] += e.Quantity
		}
	}
	return sums, nil
}

func (f *fakeLedger) SumByLocationAndBucket(_ context.Context, itemID int64) (map[int64]map[entity.Bucket]int64, error) {
	sums := make(map[int64]map[entity.Bucket]int64)
	for _, e := range f.entries {
		if e.InventoryItemID != itemID {
			continue
		}
		if sums[e.InventoryLocationID] == nil {
			sums[e.InventoryLocationID] = make(map[entity.Bucket]int64)
		}
		sums[e.InventoryLocationID][e.Bucket] += e.Quantity
	}
	return sums, nil
}

func (f *fakeLedger) SumByItemAndBucket(_ context.Context, locationID int64) (map[int64]map[entity.Bucket]int64, error) {
	sums := make(map[int64]map[entity.Bucket]int64)
	for _, e := range f.entries {
		if e.InventoryLocationID != locationID {
			continue
		}
		if sums[e.InventoryItemID] == nil {
			sums[e.InventoryItemID] = make(map[entity.Bucket]int64)
		}
		sums[e.InventoryItemID][e.Bucket] += e.Quantity
	}
	return sums, nil
}

func (f *fakeLedger) SumForBuckets(_ context.Context, itemID, locationID int64, buckets []entity.Bucket) (int64, error) {
	wanted := make(map[entity.Bucket]bool, len(buckets))
	for _, b := range buckets {
		wanted[b] = true
	}
	var total int64
	for _, e := range f.entries {
		if e.InventoryItemID == itemID && e.InventoryLocationID == locationID && wanted[e.Bucket] {
			total += e.Quantity
		}
	}
	return total, nil
}

func (f *fakeLedger) SumByLineItem(_ context.Context, itemID, locationID, lineItemID int64, bucket entity.Bucket) (int64, error) {
	var total int64
	for _, e := range f.entries {
		if e.InventoryItemID == itemID && e.InventoryLocationID == locationID &&
			e.Bucket == bucket && e.LineItemID != nil && *e.LineItemID == lineItemID {
			total += e.Quantity
		}
	}
	return total, nil
}

func (f *fakeLedger) ListByMovementHash(_ context.Context, movementHash string) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for _, e := range f.entries {
		if e.MovementHash == movementHash {
			out = append(out, e)
		}
	}
	return out, nil
}

// totalQuantity suma todas las cantidades del ledger (conservación).
func (f *fakeLedger) totalQuantity() int64 {
	var total int64
	for _, e := range f.entries {
		total += e.Quantity
	}
	return total
}

// fakeTxRunner pasa el ledger a fn y, si fn falla, descarta las entradas escritas
// durante la llamada, imitando el rollback de la transacción real.
type fakeTxRunner struct {
	ledger *fakeLedger
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(trxRepo repository.InventoryTransactionRepository) error) error {
	snapshot := len(r.ledger.entries)
	if err := fn(r.ledger); err != nil {
		r.ledger.entries = r.ledger.entries[:snapshot]
		return err
	}
	return nil
}

// fakeItemRepo registro de artículos en memoria.
type fakeItemRepo struct {
	items map[int64]*entity.InventoryItem
}

var _ repository.InventoryItemRepository = (*fakeItemRepo)(nil)

func newFakeItemRepo(ids ...int64) *fakeItemRepo {
	items := make(map[int64]*entity.InventoryItem, len(ids))
	for _, id := range ids {
		items[id] = &entity.InventoryItem{ID: id, PurchasableID: id * 100, CreatedAt: time.Now()}
	}
	return &fakeItemRepo{items: items}
}

func (f *fakeItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	item.ID = int64(len(f.items) + 1)
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*entity.InventoryItem, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeItemRepo) ListIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// fakeLocationRepo registro de ubicaciones en memoria.
type fakeLocationRepo struct {
	locations map[int64]*entity.InventoryLocation
}

var _ repository.InventoryLocationRepository = (*fakeLocationRepo)(nil)

func newFakeLocationRepo(ids ...int64) *fakeLocationRepo {
	locations := make(map[int64]*entity.InventoryLocation, len(ids))
	for _, id := range ids {
		locations[id] = &entity.InventoryLocation{ID: id, StoreID: 1, Name: "bodega"}
	}
	return &fakeLocationRepo{locations: locations}
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id int64) (*entity.InventoryLocation, error) {
	return f.locations[id], nil
}

func (f *fakeLocationRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryLocation, error) {
	out := make([]*entity.InventoryLocation, 0, len(f.locations))
	for _, loc := range f.locations {
		out = append(out, loc)
	}
	return out, nil
}

func (f *fakeLocationRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.InventoryLocation, error) {
	var out []*entity.InventoryLocation
	for _, loc := range f.locations {
		if loc.StoreID == storeID {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) ListIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.locations))
	for id := range f.locations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// fakeOrderRepo proveedor de órdenes en memoria (solo líneas completadas).
type fakeOrderRepo struct {
	lineItems []*entity.OrderLineItem
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) CompletedLineItemsForItem(_ context.Context, itemID int64) ([]*entity.OrderLineItem, error) {
	var out []*entity.OrderLineItem
	for _, li := range f.lineItems {
		if li.InventoryItemID == itemID {
			out = append(out, li)
		}
	}
	return out, nil
}
