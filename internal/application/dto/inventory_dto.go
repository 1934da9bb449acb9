package dto

import "time"

// MovementRequest un movimiento dentro de un lote: mueve quantity del artículo desde
// la clave (from_location_id, from_bucket) hacia (to_location_id, to_bucket).
type MovementRequest struct {
	InventoryItemID int64  `json:"inventory_item_id"`
	Quantity        int64  `json:"quantity"`
	FromLocationID  int64  `json:"from_location_id"`
	FromBucket      string `json:"from_bucket"`
	ToLocationID    int64  `json:"to_location_id"`
	ToBucket        string `json:"to_bucket"`
	TransferID      *int64 `json:"transfer_id,omitempty"`
	OrderID         *int64 `json:"order_id,omitempty"`
	LineItemID      *int64 `json:"line_item_id,omitempty"`
	Note            string `json:"note,omitempty"`
}

// ExecuteMovementsRequest body para POST /api/inventory/movements.
// El lote completo se confirma o se revierte junto.
type ExecuteMovementsRequest struct {
	Movements []MovementRequest `json:"movements"`
}

// Modos de ajuste manual.
const (
	AdjustmentModeSet    = "set"    // fija el agregado en el valor objetivo
	AdjustmentModeAdjust = "adjust" // suma el delta indicado
)

// AdjustmentRequest body para POST /api/inventory/adjustments.
// Target es un bucket del enum o "onHand".
type AdjustmentRequest struct {
	InventoryItemID     int64  `json:"inventory_item_id"`
	InventoryLocationID int64  `json:"inventory_location_id"`
	Target              string `json:"target"`
	Mode                string `json:"mode"`
	Quantity            int64  `json:"quantity"`
	Note                string `json:"note,omitempty"`
}

// TransactionResponse entrada del ledger en respuestas.
type TransactionResponse struct {
	ID                  int64     `json:"id"`
	InventoryItemID     int64     `json:"inventory_item_id"`
	InventoryLocationID int64     `json:"inventory_location_id"`
	Bucket              string    `json:"bucket"`
	Quantity            int64     `json:"quantity"`
	MovementHash        string    `json:"movement_hash"`
	Note                string    `json:"note,omitempty"`
	TransferID          *int64    `json:"transfer_id,omitempty"`
	OrderID             *int64    `json:"order_id,omitempty"`
	LineItemID          *int64    `json:"line_item_id,omitempty"`
	UserID              string    `json:"user_id,omitempty"`
	DateCreated         time.Time `json:"date_created"`
}

// LevelResponse nivel derivado por (artículo, ubicación): buckets más compuestos.
type LevelResponse struct {
	InventoryItemID     int64            `json:"inventory_item_id"`
	InventoryLocationID int64            `json:"inventory_location_id"`
	Buckets             map[string]int64 `json:"buckets"`
	OnHand              int64            `json:"on_hand"`
	Unavailable         int64            `json:"unavailable"`
}

// LevelListResponse listado de niveles.
type LevelListResponse struct {
	Levels []LevelResponse `json:"levels"`
	Total  int             `json:"total"`
}

// UnfulfilledOrdersResponse órdenes con demanda no cubierta para una clave.
type UnfulfilledOrdersResponse struct {
	InventoryItemID     int64   `json:"inventory_item_id"`
	InventoryLocationID int64   `json:"inventory_location_id"`
	OrderIDs            []int64 `json:"order_ids"`
}
