package entity

// OrderLineItem línea de una orden completada, consumida solo por ID desde el
// proveedor externo de órdenes. Quantity es la cantidad pedida, no la movida.
type OrderLineItem struct {
	ID              int64
	OrderID         int64
	InventoryItemID int64
	Quantity        int64
}
