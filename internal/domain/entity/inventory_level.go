package entity

// InventoryLevel estado derivado de stock para un (artículo, ubicación): total por
// bucket más los compuestos onHand y unavailable. No se persiste; se recalcula como
// un fold sobre el ledger.
type InventoryLevel struct {
	InventoryItemID     int64
	InventoryLocationID int64
	Quantities          map[Bucket]int64
}

// NewInventoryLevel construye un nivel a partir de las sumas por bucket, rellenando
// con cero todo bucket sin entradas. La ausencia de transacciones no es un error:
// significa stock cero.
func NewInventoryLevel(itemID, locationID int64, sums map[Bucket]int64) *InventoryLevel {
	quantities := make(map[Bucket]int64, len(Buckets))
	for _, b := range Buckets {
		quantities[b] = sums[b]
	}
	return &InventoryLevel{
		InventoryItemID:     itemID,
		InventoryLocationID: locationID,
		Quantities:          quantities,
	}
}

// Quantity devuelve el total del bucket indicado.
func (l *InventoryLevel) Quantity(b Bucket) int64 {
	return l.Quantities[b]
}

// OnHand total compuesto de stock físicamente presente (excluye incoming).
func (l *InventoryLevel) OnHand() int64 {
	var total int64
	for _, b := range OnHandBuckets {
		total += l.Quantities[b]
	}
	return total
}

// Unavailable total compuesto de stock en mano pero no vendible.
func (l *InventoryLevel) Unavailable() int64 {
	var total int64
	for _, b := range UnavailableBuckets {
		total += l.Quantities[b]
	}
	return total
}
