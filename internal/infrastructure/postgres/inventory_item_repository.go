package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo adaptador del registro de artículos sobre PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un artículo nuevo y resuelve su ID.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items
			(purchasable_id, country_code_of_origin, administrative_area_code_of_origin,
			 harmonized_system_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.PurchasableID, nullIfEmpty(item.CountryCodeOfOrigin),
		nullIfEmpty(item.AdministrativeAreaCodeOfOrigin), nullIfEmpty(item.HarmonizedSystemCode),
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	query := `
		SELECT id, purchasable_id, country_code_of_origin,
		       administrative_area_code_of_origin, harmonized_system_code,
		       created_at, updated_at
		FROM inventory_items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// Update reescribe los campos descriptivos del artículo; nunca toca cantidades.
func (r *InventoryItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET country_code_of_origin = $2, administrative_area_code_of_origin = $3,
		    harmonized_system_code = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, nullIfEmpty(item.CountryCodeOfOrigin),
		nullIfEmpty(item.AdministrativeAreaCodeOfOrigin), nullIfEmpty(item.HarmonizedSystemCode),
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos con paginación.
func (r *InventoryItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, purchasable_id, country_code_of_origin,
		       administrative_area_code_of_origin, harmonized_system_code,
		       created_at, updated_at
		FROM inventory_items ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ListIDs devuelve todos los IDs de artículos, para el relleno con ceros del agregador.
func (r *InventoryItemRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM inventory_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory item ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan inventory item id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var country, area, hs *string
	if err := row.Scan(&it.ID, &it.PurchasableID, &country, &area, &hs,
		&it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if country != nil {
		it.CountryCodeOfOrigin = *country
	}
	if area != nil {
		it.AdministrativeAreaCodeOfOrigin = *area
	}
	if hs != nil {
		it.HarmonizedSystemCode = *hs
	}
	return &it, nil
}
