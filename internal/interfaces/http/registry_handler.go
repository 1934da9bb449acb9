package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// RegistryHandler maneja las peticiones del registro de artículos y ubicaciones.
type RegistryHandler struct {
	items     *usecase.ItemUseCase
	locations *usecase.LocationUseCase
}

// NewRegistryHandler construye el handler.
func NewRegistryHandler(items *usecase.ItemUseCase, locations *usecase.LocationUseCase) *RegistryHandler {
	return &RegistryHandler{items: items, locations: locations}
}

// CreateItem godoc
// @Summary      Crear un artículo de inventario
// @Tags         registry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "purchasable_id y campos descriptivos"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *RegistryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.items.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem godoc
// @Summary      Obtener un artículo por ID
// @Tags         registry
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *RegistryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	item, err := h.items.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(item)
}

// UpdateItem godoc
// @Summary      Reescribir los campos descriptivos de un artículo (save explícito)
// @Tags         registry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "solo campos descriptivos"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *RegistryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.items.Update(c.Context(), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(item)
}

// ListItems godoc
// @Summary      Listar artículos
// @Tags         registry
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *RegistryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.items.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// GetLocation godoc
// @Summary      Obtener una ubicación por ID
// @Tags         registry
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *RegistryHandler) GetLocation(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	loc, err := h.locations.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(loc)
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         registry
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *RegistryHandler) ListLocations(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.locations.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// ListStoreLocations godoc
// @Summary      Listar las ubicaciones de una tienda
// @Tags         registry
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/stores/{id}/locations [get]
func (h *RegistryHandler) ListStoreLocations(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	list, err := h.locations.ListByStore(c.Context(), storeID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}
