package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo adaptador de solo lectura hacia las tablas del proveedor de órdenes.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CompletedLineItemsForItem devuelve las líneas de órdenes completadas que
// referencian el artículo indicado.
func (r *OrderRepo) CompletedLineItemsForItem(ctx context.Context, itemID int64) ([]*entity.OrderLineItem, error) {
	query := `
		SELECT li.id, li.order_id, li.inventory_item_id, li.quantity
		FROM order_line_items li
		JOIN orders o ON o.id = li.order_id
		WHERE li.inventory_item_id = $1 AND o.status = 'completed'
		ORDER BY li.id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list completed line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderLineItem
	for rows.Next() {
		var li entity.OrderLineItem
		if err := rows.Scan(&li.ID, &li.OrderID, &li.InventoryItemID, &li.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line item: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}
