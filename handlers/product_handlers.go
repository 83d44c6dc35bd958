package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/utils"
)

// ReorderRequest lists every id of a collection in the new display order.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"dive,required"`
}

// ListProducts godoc
// @Summary List all products
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/products [get]
func (h *ApplicationHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.Products.List(c.UserContext())
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product at the end of the display order
// @Tags admin
// @Accept json
// @Produce json
// @Param product body catalog.ProductInput true "Product"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products [post]
func (h *ApplicationHandler) CreateProduct(c *fiber.Ctx) error {
	var in catalog.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse product JSON: "+err.Error())
	}
	product, err := h.Catalog.Products.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body catalog.ProductInput true "Product"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [patch]
func (h *ApplicationHandler) UpdateProduct(c *fiber.Ctx) error {
	var in catalog.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse product JSON: "+err.Error())
	}
	product, err := h.Catalog.Products.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags admin
// @Param id path string true "Product ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/products/{id} [delete]
func (h *ApplicationHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.Catalog.Products.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Product deleted")
}

// ToggleProduct godoc
// @Summary Show or hide a product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body ToggleRequest true "Current state"
// @Success 200 {object} SuccessResponse
// @Router /admin/products/{id}/toggle [post]
func (h *ApplicationHandler) ToggleProduct(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	id := c.Params("id")
	active, err := h.Catalog.Products.Toggle(c.UserContext(), id, *req.CurrentActive)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"id": id, "active": active})
}

// ReorderProducts godoc
// @Summary Rewrite the product display order
// @Description Writes display_order 1..N following the given ids. On failure re-fetch the list; no rollback is made.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body ReorderRequest true "Ordered ids"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/order [put]
func (h *ApplicationHandler) ReorderProducts(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	report, err := h.Catalog.Products.Reorder(c.UserContext(), req.IDs)
	if err != nil {
		return utils.RespondWithAppError(c, err, report)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}

// UploadProductImage godoc
// @Summary Upload a product image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} SuccessResponse
// @Router /admin/products/image [post]
func (h *ApplicationHandler) UploadProductImage(c *fiber.Ctx) error {
	file, fh, err := formFile(c)
	if err != nil {
		return err
	}
	defer fh.Close()

	uploaded, err := h.Catalog.Products.UploadImage(c.UserContext(), file.Filename, contentType(file), fh)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, uploaded)
}
