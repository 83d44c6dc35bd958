package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/models"
	"bakerysite/api-gateway/utils"
)

// ApplicationView is an application as listed to the admin, with the
// preferred location split out of the message.
type ApplicationView struct {
	models.Application
	PreferredLocation string `json:"preferred_location,omitempty"`
	IsDefault         bool   `json:"is_default"`
}

type ApplicationListResponse struct {
	Mode         catalog.Mode      `json:"mode"`
	Applications []ApplicationView `json:"applications"`
}

// StatusRequest sets the status of an application or an order.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListApplications godoc
// @Summary List job applications
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	entries, mode := h.Catalog.Applications.List(c.UserContext())
	views := make([]ApplicationView, 0, len(entries))
	for _, e := range entries {
		v := ApplicationView{Application: e.Record, IsDefault: e.IsSeed()}
		if e.Record.Message != nil {
			loc, rest := models.SplitPreferredLocation(*e.Record.Message)
			v.PreferredLocation = loc
			v.Message = &rest
		}
		views = append(views, v)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, ApplicationListResponse{Mode: mode, Applications: views})
}

// UpdateApplicationStatus godoc
// @Summary Change an application's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body StatusRequest true "new, starred, rejected or trashed"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if err := h.Catalog.Applications.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Application status updated")
}

// DeleteApplication godoc
// @Summary Permanently delete an application and its CV
// @Tags admin
// @Param id path string true "Application ID"
// @Param cv_url query string false "Public URL of the uploaded CV"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	if err := h.Catalog.Applications.Delete(c.UserContext(), c.Params("id"), c.Query("cv_url")); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Application deleted")
}
