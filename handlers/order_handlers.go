package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakerysite/api-gateway/utils"
)

// ListOrders godoc
// @Summary List custom orders, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/orders [get]
func (h *ApplicationHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.Catalog.Orders.List(c.UserContext())
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Change an order's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body StatusRequest true "pending, contacted or completed"
// @Success 200 {object} SuccessResponse
// @Router /admin/orders/{id}/status [patch]
func (h *ApplicationHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if err := h.Catalog.Orders.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Order status updated")
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags admin
// @Param id path string true "Order ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/orders/{id} [delete]
func (h *ApplicationHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.Catalog.Orders.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Order deleted")
}
