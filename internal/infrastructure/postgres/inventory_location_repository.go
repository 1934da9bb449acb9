package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryLocationRepository = (*InventoryLocationRepo)(nil)

// InventoryLocationRepo adaptador de lectura del registro de ubicaciones.
type InventoryLocationRepo struct {
	q Querier
}

// NewInventoryLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLocationRepository(q Querier) *InventoryLocationRepo {
	return &InventoryLocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID.
func (r *InventoryLocationRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryLocation, error) {
	query := `
		SELECT id, store_id, name, created_at, updated_at
		FROM inventory_locations WHERE id = $1`
	var l entity.InventoryLocation
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.StoreID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory location: %w", err)
	}
	return &l, nil
}

// List lista ubicaciones con paginación.
func (r *InventoryLocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryLocation, error) {
	query := `
		SELECT id, store_id, name, created_at, updated_at
		FROM inventory_locations ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory locations: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

// ListByStore lista las ubicaciones de una tienda.
func (r *InventoryLocationRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.InventoryLocation, error) {
	query := `
		SELECT id, store_id, name, created_at, updated_at
		FROM inventory_locations WHERE store_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory locations by store: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

// ListIDs devuelve todos los IDs de ubicaciones, para el relleno con ceros del agregador.
func (r *InventoryLocationRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM inventory_locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory location ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan inventory location id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanLocations(rows pgx.Rows) ([]*entity.InventoryLocation, error) {
	var list []*entity.InventoryLocation
	for rows.Next() {
		var l entity.InventoryLocation
		if err := rows.Scan(&l.ID, &l.StoreID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
