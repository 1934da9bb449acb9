package entity

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// Movement traslado de una cantidad de un artículo entre dos claves (ubicación, bucket).
// Se materializa como un par débito/crédito en el ledger, agrupado por un movement hash.
type Movement struct {
	InventoryItemID int64
	Quantity        int64
	FromLocationID  int64
	FromBucket      Bucket
	ToLocationID    int64
	ToBucket        Bucket
	TransferID      *int64
	OrderID         *int64
	LineItemID      *int64
	UserID          string
	Note            string
}

// Validate verifica el movimiento antes de cualquier escritura: cantidad positiva,
// buckets del enum y claves origen/destino presentes y distintas.
func (m Movement) Validate() error {
	if m.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if m.InventoryItemID == 0 || m.FromLocationID == 0 || m.ToLocationID == 0 {
		return domain.ErrInvalidInput
	}
	if _, err := ParseBucket(string(m.FromBucket)); err != nil {
		return domain.ErrInvalidInput
	}
	if _, err := ParseBucket(string(m.ToBucket)); err != nil {
		return domain.ErrInvalidInput
	}
	if m.FromLocationID == m.ToLocationID && m.FromBucket == m.ToBucket {
		return domain.ErrInvalidInput
	}
	return nil
}

// Entries produce el par débito/crédito del movimiento. Ambas entradas comparten
// movementHash y timestamp, y sus cantidades suman exactamente cero (conservación).
func (m Movement) Entries(movementHash string, now time.Time) []*InventoryTransaction {
	debit := &InventoryTransaction{
		InventoryItemID:     m.InventoryItemID,
		InventoryLocationID: m.FromLocationID,
		Bucket:              m.FromBucket,
		Quantity:            -m.Quantity,
		MovementHash:        movementHash,
		Note:                m.Note,
		TransferID:          m.TransferID,
		OrderID:             m.OrderID,
		LineItemID:          m.LineItemID,
		UserID:              m.UserID,
		DateCreated:         now,
	}
	credit := &InventoryTransaction{
		InventoryItemID:     m.InventoryItemID,
		InventoryLocationID: m.ToLocationID,
		Bucket:              m.ToBucket,
		Quantity:            m.Quantity,
		MovementHash:        movementHash,
		Note:                m.Note,
		TransferID:          m.TransferID,
		OrderID:             m.OrderID,
		LineItemID:          m.LineItemID,
		UserID:              m.UserID,
		DateCreated:         now,
	}
	return []*InventoryTransaction{debit, credit}
}
