package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/models"
	"bakerysite/api-gateway/utils"
)

// JobView is a job as listed to the admin. IsDefault marks records that are
// not stored yet and can only be activated.
type JobView struct {
	models.Job
	IsDefault bool `json:"is_default"`
}

// JobListResponse is the payload of the admin job listing.
type JobListResponse struct {
	Mode catalog.Mode `json:"mode"`
	Jobs []JobView    `json:"jobs"`
}

// ToggleRequest carries the state the client currently displays.
type ToggleRequest struct {
	CurrentActive *bool `json:"current_active" validate:"required"`
}

// GetStatus godoc
// @Summary Backend status
// @Description Reports whether the content store is reachable and whether default data is being served.
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/status [get]
func (h *ApplicationHandler) GetStatus(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Catalog.Status(c.UserContext()))
}

// ResetDatabase godoc
// @Summary Delete every job and application
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/reset [post]
func (h *ApplicationHandler) ResetDatabase(c *fiber.Ctx) error {
	report, err := h.Catalog.ResetDatabase(c.UserContext())
	if err != nil {
		return utils.RespondWithAppError(c, err, report)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}

// ListJobs godoc
// @Summary List jobs for the admin
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/jobs [get]
func (h *ApplicationHandler) ListJobs(c *fiber.Ctx) error {
	entries, mode := h.Catalog.Jobs.List(c.UserContext())
	views := make([]JobView, 0, len(entries))
	for _, e := range entries {
		views = append(views, JobView{Job: e.Record, IsDefault: e.IsSeed()})
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, JobListResponse{Mode: mode, Jobs: views})
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags admin
// @Accept json
// @Produce json
// @Param job body models.Job true "Job"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/jobs [post]
func (h *ApplicationHandler) CreateJob(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse job JSON: "+err.Error())
	}
	created, err := h.Catalog.Jobs.Create(c.UserContext(), job)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, created)
}

// UpdateJob godoc
// @Summary Update a stored job posting
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body catalog.JobInput true "Job"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "Default job; activate all first"
// @Router /admin/jobs/{id} [patch]
func (h *ApplicationHandler) UpdateJob(c *fiber.Ctx) error {
	var in catalog.JobInput
	if err := c.BodyParser(&in); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse job JSON: "+err.Error())
	}
	updated, err := h.Catalog.Jobs.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, updated)
}

// DeleteJob godoc
// @Summary Delete a stored job posting
// @Tags admin
// @Param id path string true "Job ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "Default job; activate all first"
// @Router /admin/jobs/{id} [delete]
func (h *ApplicationHandler) DeleteJob(c *fiber.Ctx) error {
	if err := h.Catalog.Jobs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return utils.RespondWithMessage(c, fiber.StatusOK, "Job deleted")
}

// ToggleJob godoc
// @Summary Toggle a job's active flag
// @Description Default jobs are stored on first toggle.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param body body ToggleRequest true "Current state"
// @Success 200 {object} SuccessResponse
// @Router /admin/jobs/{id}/toggle [post]
func (h *ApplicationHandler) ToggleJob(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	res, err := h.Catalog.Jobs.Toggle(c.UserContext(), c.Params("id"), *req.CurrentActive)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, res)
}

// ActivateAllJobs godoc
// @Summary Activate every job
// @Description Stores missing default jobs, then activates every row.
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/jobs/activate-all [post]
func (h *ApplicationHandler) ActivateAllJobs(c *fiber.Ctx) error {
	report, err := h.Catalog.Jobs.ActivateAll(c.UserContext())
	if err != nil {
		return utils.RespondWithAppError(c, err, report)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}

// DeactivateAllJobs godoc
// @Summary Deactivate every job
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/jobs/deactivate-all [post]
func (h *ApplicationHandler) DeactivateAllJobs(c *fiber.Ctx) error {
	report, err := h.Catalog.Jobs.DeactivateAll(c.UserContext())
	if err != nil {
		return utils.RespondWithAppError(c, err, report)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}

// DeleteAllJobs godoc
// @Summary Delete every stored job
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/jobs [delete]
func (h *ApplicationHandler) DeleteAllJobs(c *fiber.Ctx) error {
	report, err := h.Catalog.Jobs.DeleteAll(c.UserContext())
	if err != nil {
		return utils.RespondWithAppError(c, err, report)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}
