package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// UnfulfilledUseCase cruza los niveles committed contra las líneas de órdenes
// completadas para encontrar órdenes cuya demanda no ha sido cubierta por movimientos
// etiquetados. Solo lectura: nunca escribe en el ledger.
type UnfulfilledUseCase struct {
	trxRepo   repository.InventoryTransactionRepository
	orderRepo repository.OrderRepository
}

// NewUnfulfilledUseCase construye el caso de uso.
func NewUnfulfilledUseCase(
	trxRepo repository.InventoryTransactionRepository,
	orderRepo repository.OrderRepository,
) *UnfulfilledUseCase {
	return &UnfulfilledUseCase{trxRepo: trxRepo, orderRepo: orderRepo}
}

// UnfulfilledOrders devuelve los IDs distintos de órdenes completadas con alguna
// línea cuya cantidad movida (entradas committed etiquetadas con la línea, en esta
// clave artículo+ubicación) es menor que la cantidad pedida. Si el total committed
// de la clave es <= 0 la búsqueda se omite por completo.
func (uc *UnfulfilledUseCase) UnfulfilledOrders(ctx context.Context, itemID, locationID int64) ([]int64, error) {
	committed, err := uc.trxRepo.SumForBuckets(ctx, itemID, locationID, []entity.Bucket{entity.BucketCommitted})
	if err != nil {
		return nil, err
	}
	if committed <= 0 {
		return nil, nil
	}

	lineItems, err := uc.orderRepo.CompletedLineItemsForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var orderIDs []int64
	for _, li := range lineItems {
		moved, err := uc.trxRepo.SumByLineItem(ctx, itemID, locationID, li.ID, entity.BucketCommitted)
		if err != nil {
			return nil, err
		}
		if moved < li.Quantity && !seen[li.OrderID] {
			seen[li.OrderID] = true
			orderIDs = append(orderIDs, li.OrderID)
		}
	}
	sort.Slice(orderIDs, func(i, j int) bool { return orderIDs[i] < orderIDs[j] })
	return orderIDs, nil
}
