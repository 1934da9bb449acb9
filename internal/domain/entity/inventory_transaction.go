package entity

import "time"

// InventoryTransaction entrada inmutable del ledger de inventario (append-only).
// Cantidad con signo: positiva aumenta el bucket, negativa lo disminuye.
// Nunca se actualiza ni se borra; las correcciones se escriben como entradas compensatorias.
type InventoryTransaction struct {
	ID                  int64
	InventoryItemID     int64
	InventoryLocationID int64
	Bucket              Bucket
	Quantity            int64
	MovementHash        string // agrupa las entradas escritas juntas (auditoría/undo)
	Note                string
	TransferID          *int64
	OrderID             *int64
	LineItemID          *int64
	UserID              string
	DateCreated         time.Time
}
