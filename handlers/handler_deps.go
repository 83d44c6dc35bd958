package handlers

import (
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/config"
	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/catalog"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Catalog  *catalog.Catalog
	Logger   *logrus.Logger
	Config   *config.Config
	validate *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(cat *catalog.Catalog, logger *logrus.Logger, cfg *config.Config) *ApplicationHandler {
	return &ApplicationHandler{
		Catalog:  cat,
		Logger:   logger,
		Config:   cfg,
		validate: validator.New(),
	}
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Partial bool   `json:"partial,omitempty"`
}

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// bind parses the JSON body into dst and runs its validate tags.
func (h *ApplicationHandler) bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.Validation("parse body", "cannot parse request body", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return apperrors.Validation("parse body", "invalid request body", err)
	}
	return nil
}

// formFile opens the multipart "file" field.
func formFile(c *fiber.Ctx) (*multipart.FileHeader, io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, nil, apperrors.Validation("read upload", "multipart field \"file\" is required", err)
	}
	fh, err := file.Open()
	if err != nil {
		return nil, nil, apperrors.Validation("read upload", "cannot open uploaded file", err)
	}
	return file, fh, nil
}

func contentType(file *multipart.FileHeader) string {
	return file.Header.Get(fiber.HeaderContentType)
}
