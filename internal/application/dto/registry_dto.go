package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	PurchasableID                  int64  `json:"purchasable_id"`
	CountryCodeOfOrigin            string `json:"country_code_of_origin,omitempty"`
	AdministrativeAreaCodeOfOrigin string `json:"administrative_area_code_of_origin,omitempty"`
	HarmonizedSystemCode           string `json:"harmonized_system_code,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Solo campos descriptivos.
type UpdateItemRequest struct {
	CountryCodeOfOrigin            *string `json:"country_code_of_origin,omitempty"`
	AdministrativeAreaCodeOfOrigin *string `json:"administrative_area_code_of_origin,omitempty"`
	HarmonizedSystemCode           *string `json:"harmonized_system_code,omitempty"`
}

// ItemResponse artículo del registro en respuestas.
type ItemResponse struct {
	ID                             int64     `json:"id"`
	PurchasableID                  int64     `json:"purchasable_id"`
	CountryCodeOfOrigin            string    `json:"country_code_of_origin,omitempty"`
	AdministrativeAreaCodeOfOrigin string    `json:"administrative_area_code_of_origin,omitempty"`
	HarmonizedSystemCode           string    `json:"harmonized_system_code,omitempty"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LocationResponse ubicación del registro en respuestas.
type LocationResponse struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Page      PageResponse       `json:"page"`
}
