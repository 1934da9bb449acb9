package entity

import "time"

// InventoryItem identidad de un artículo almacenable. Los campos descriptivos se
// reescriben solo vía un save explícito del registro; las cantidades nunca viven aquí.
type InventoryItem struct {
	ID                             int64
	PurchasableID                  int64
	CountryCodeOfOrigin            string
	AdministrativeAreaCodeOfOrigin string
	HarmonizedSystemCode           string
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}
