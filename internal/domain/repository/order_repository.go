package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// OrderRepository puerto de solo lectura hacia el proveedor externo de órdenes.
type OrderRepository interface {
	// CompletedLineItemsForItem devuelve las líneas de órdenes completadas que
	// referencian el artículo indicado.
	CompletedLineItemsForItem(ctx context.Context, itemID int64) ([]*entity.OrderLineItem, error)
}
