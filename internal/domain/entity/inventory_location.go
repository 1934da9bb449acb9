package entity

import "time"

// InventoryLocation identidad de una ubicación física o virtual de stock.
// Los atributos descriptivos pertenecen al registro; el ledger solo referencia el ID.
type InventoryLocation struct {
	ID        int64
	StoreID   int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
