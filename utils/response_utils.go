package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/catalog"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// RespondWithMessage sends a JSON success response without a payload.
func RespondWithMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindConnection:     fiber.StatusServiceUnavailable,
	apperrors.KindEmptyOrMissing: fiber.StatusServiceUnavailable,
	apperrors.KindSeedImmutable:  fiber.StatusConflict,
	apperrors.KindValidation:     fiber.StatusBadRequest,
	apperrors.KindNotFound:       fiber.StatusNotFound,
	apperrors.KindStore:          fiber.StatusBadGateway,
}

var kindMessage = map[apperrors.Kind]string{
	apperrors.KindConnection:     "The content store is not reachable.",
	apperrors.KindEmptyOrMissing: "The content store is missing a required table.",
	apperrors.KindSeedImmutable:  "This is a default record. Use \"activate all\" to store the default jobs before editing them.",
	apperrors.KindValidation:     "The request is invalid.",
	apperrors.KindNotFound:       "The record does not exist.",
	apperrors.KindStore:          "The content store rejected the operation.",
}

const partialWarning = "The operation may have been partially applied. Reload to see the current state."

// StatusForError maps an error kind to an HTTP status code.
func StatusForError(err error) int {
	return kindStatus[apperrors.KindOf(err)]
}

// RespondWithAppError renders a typed error. data, when not nil, is attached
// so callers can see how far a bulk operation got.
func RespondWithAppError(c *fiber.Ctx, err error, data interface{}) error {
	kind := apperrors.KindOf(err)
	body := fiber.Map{
		"status":  "error",
		"kind":    kind,
		"message": kindMessage[kind],
		"detail":  err.Error(),
	}
	switch kind {
	case apperrors.KindConnection, apperrors.KindEmptyOrMissing:
		body["setup"] = catalog.SetupInstructions
	case apperrors.KindValidation:
		if details := FormatValidationErrors(err); len(details) > 0 {
			body["errors"] = details
		}
	}
	if apperrors.IsPartial(err) {
		body["partial"] = true
		body["warning"] = partialWarning
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(kindStatus[kind]).JSON(body)
}

// ErrorHandler is the fiber error handler for the API.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return RespondWithError(c, fe.Code, fe.Message)
		}
		if StatusForError(err) >= fiber.StatusInternalServerError {
			fields := logrus.Fields{"kind": apperrors.KindOf(err), "error": err.Error()}
			var ae *apperrors.Error
			if errors.As(err, &ae) && len(ae.Stack) > 0 {
				fields["stack"] = string(ae.Stack)
			}
			log.WithFields(fields).Error("Request failed")
		}
		return RespondWithAppError(c, err, nil)
	}
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var errors []string
	for _, err := range verrs {
		var element string
		element = fmt.Sprintf("Field '%s' failed on the '%s' tag", err.Field(), err.Tag())
		if err.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, err.Param())
		}
		errors = append(errors, element)
	}
	return errors
}

// SanitizeInput trims surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
