package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/models"
	"bakerysite/api-gateway/utils"
)

// Health godoc
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "API Gateway is healthy",
	})
}

// ListOpenJobs godoc
// @Summary List open job postings
// @Description Returns active postings, or the default postings while no job is stored.
// @Tags public
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /jobs [get]
func (h *ApplicationHandler) ListOpenJobs(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Catalog.Jobs.ListOpen(c.UserContext()))
}

// SubmitApplication godoc
// @Summary Apply for a job
// @Description Stores a job application. Upload the CV first and pass its name and URL.
// @Tags public
// @Accept json
// @Produce json
// @Param application body catalog.ApplicationInput true "Application"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var in catalog.ApplicationInput
	if err := h.bind(c, &in); err != nil {
		return err
	}
	app, err := h.Catalog.Applications.Submit(c.UserContext(), in)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, app)
}

// UploadCV godoc
// @Summary Upload a CV
// @Tags public
// @Accept mpfd
// @Produce json
// @Param file formData file true "PDF, DOC or DOCX"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /applications/cv [post]
func (h *ApplicationHandler) UploadCV(c *fiber.Ctx) error {
	file, fh, err := formFile(c)
	if err != nil {
		return err
	}
	defer fh.Close()

	h.Logger.WithFields(logrus.Fields{"filename": file.Filename, "size": file.Size}).Info("Received CV upload")
	uploaded, err := h.Catalog.Applications.UploadCV(c.UserContext(), file.Filename, contentType(file), fh)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, uploaded)
}

// SubmitOrder godoc
// @Summary Place a custom order
// @Tags public
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "Order"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [post]
func (h *ApplicationHandler) SubmitOrder(c *fiber.Ctx) error {
	var order models.OrderRequest
	if err := c.BodyParser(&order); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse order JSON: "+err.Error())
	}
	created, err := h.Catalog.Orders.Submit(c.UserContext(), order)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, created)
}

// ListActiveProducts godoc
// @Summary List products shown on the site
// @Tags public
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /products [get]
func (h *ApplicationHandler) ListActiveProducts(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Catalog.Products.ListActive(c.UserContext()))
}
