package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y ajustes (protegido).
type InventoryHandler struct {
	movements   *inventory.MovementUseCase
	adjustments *inventory.AdjustmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementUseCase, adjustments *inventory.AdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, adjustments: adjustments}
}

// ExecuteMovements godoc
// @Summary      Ejecutar un lote de movimientos de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecuteMovementsRequest  true  "lote de movimientos; se confirma o revierte completo"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) ExecuteMovements(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ExecuteMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movements := make([]entity.Movement, 0, len(in.Movements))
	for _, m := range in.Movements {
		movements = append(movements, entity.Movement{
			InventoryItemID: m.InventoryItemID,
			Quantity:        m.Quantity,
			FromLocationID:  m.FromLocationID,
			FromBucket:      entity.Bucket(m.FromBucket),
			ToLocationID:    m.ToLocationID,
			ToBucket:        entity.Bucket(m.ToBucket),
			TransferID:      m.TransferID,
			OrderID:         m.OrderID,
			LineItemID:      m.LineItemID,
			Note:            m.Note,
		})
	}
	if err := h.movements.ExecuteMovements(c.Context(), userID, movements); err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimientos registrados", "count": len(movements)})
}

// Adjust godoc
// @Summary      Ajuste manual de stock (set absoluto o delta relativo)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "target: bucket u onHand; mode: set | adjust"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.AdjustmentInput{
		InventoryItemID:     in.InventoryItemID,
		InventoryLocationID: in.InventoryLocationID,
		Target:              in.Target,
		Quantity:            in.Quantity,
		Note:                in.Note,
	}
	var (
		trx *entity.InventoryTransaction
		err error
	)
	switch in.Mode {
	case dto.AdjustmentModeSet:
		trx, err = h.adjustments.SetAbsolute(c.Context(), userID, input)
	case dto.AdjustmentModeAdjust:
		trx, err = h.adjustments.Adjust(c.Context(), userID, input)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser set o adjust"})
	}
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(trx))
}

// mapDomainError traduce errores de dominio a códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo o ubicación no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseIDParam lee un parámetro de ruta como ID numérico.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func toTransactionResponse(t *entity.InventoryTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                  t.ID,
		InventoryItemID:     t.InventoryItemID,
		InventoryLocationID: t.InventoryLocationID,
		Bucket:              string(t.Bucket),
		Quantity:            t.Quantity,
		MovementHash:        t.MovementHash,
		Note:                t.Note,
		TransferID:          t.TransferID,
		OrderID:             t.OrderID,
		LineItemID:          t.LineItemID,
		UserID:              t.UserID,
		DateCreated:         t.DateCreated,
	}
}
