package http

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// LevelHandler maneja las consultas de niveles, auditoría de movimientos y demanda
// no cubierta (protegido, solo lectura).
type LevelHandler struct {
	levels      *inventory.LevelUseCase
	unfulfilled *inventory.UnfulfilledUseCase
}

// NewLevelHandler construye el handler.
func NewLevelHandler(levels *inventory.LevelUseCase, unfulfilled *inventory.UnfulfilledUseCase) *LevelHandler {
	return &LevelHandler{levels: levels, unfulfilled: unfulfilled}
}

// LevelsForItem godoc
// @Summary      Niveles de un artículo en todas las ubicaciones conocidas
// @Tags         levels
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.LevelListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/levels [get]
func (h *LevelHandler) LevelsForItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	levels, err := h.levels.LevelsForItem(c.Context(), itemID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toLevelListResponse(levels))
}

// LevelForItemAtLocation godoc
// @Summary      Nivel de un artículo en una ubicación
// @Tags         levels
// @Security     Bearer
// @Produce      json
// @Param        id          path  int  true  "ID del artículo"
// @Param        locationId  path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.LevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/levels/{locationId} [get]
func (h *LevelHandler) LevelForItemAtLocation(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return mapDomainError(c, err)
	}
	level, err := h.levels.LevelForItemAtLocation(c.Context(), itemID, locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toLevelResponse(level))
}

// LevelsForLocation godoc
// @Summary      Niveles de todos los artículos en una ubicación
// @Tags         levels
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.LevelListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/locations/{id}/levels [get]
func (h *LevelHandler) LevelsForLocation(c *fiber.Ctx) error {
	locationID, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	levels, err := h.levels.LevelsForLocation(c.Context(), locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toLevelListResponse(levels))
}

// MovementEntries godoc
// @Summary      Entradas del ledger que comparten un movement hash (auditoría)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        hash  path  string  true  "movement hash"
// @Success      200  {array}  dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{hash} [get]
func (h *LevelHandler) MovementEntries(c *fiber.Ctx) error {
	entries, err := h.levels.MovementEntries(c.Context(), c.Params("hash"))
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTransactionResponse(e))
	}
	return c.JSON(out)
}

// UnfulfilledOrders godoc
// @Summary      Órdenes completadas con demanda no cubierta para un artículo y ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id           path   int  true  "ID del artículo"
// @Param        location_id  query  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.UnfulfilledOrdersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/unfulfilled [get]
func (h *LevelHandler) UnfulfilledOrders(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return mapDomainError(c, err)
	}
	locationID, err := strconv.ParseInt(c.Query("location_id"), 10, 64)
	if err != nil || locationID <= 0 {
		return mapDomainError(c, domain.ErrInvalidInput)
	}
	orderIDs, err := h.unfulfilled.UnfulfilledOrders(c.Context(), itemID, locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.UnfulfilledOrdersResponse{
		InventoryItemID:     itemID,
		InventoryLocationID: locationID,
		OrderIDs:            orderIDs,
	})
}

func toLevelResponse(l *entity.InventoryLevel) dto.LevelResponse {
	buckets := make(map[string]int64, len(l.Quantities))
	for b, q := range l.Quantities {
		buckets[string(b)] = q
	}
	return dto.LevelResponse{
		InventoryItemID:     l.InventoryItemID,
		InventoryLocationID: l.InventoryLocationID,
		Buckets:             buckets,
		OnHand:              l.OnHand(),
		Unavailable:         l.Unavailable(),
	}
}

// toLevelListResponse ordena por la clave del mapa (ubicación o artículo según la consulta).
func toLevelListResponse(levels map[int64]*entity.InventoryLevel) dto.LevelListResponse {
	keys := make([]int64, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	list := make([]dto.LevelResponse, 0, len(keys))
	for _, k := range keys {
		list = append(list, toLevelResponse(levels[k]))
	}
	return dto.LevelListResponse{Levels: list, Total: len(list)}
}
