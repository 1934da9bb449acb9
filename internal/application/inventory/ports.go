package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un repositorio
// del ledger atado a esa tx. Garantiza que un lote completo se confirma o se revierte:
// ninguna entrada de un lote fallido queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(trxRepo repository.InventoryTransactionRepository) error) error
}
