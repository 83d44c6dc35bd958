package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/models"
	"bakerysite/api-gateway/utils"
)

// Hero and carousel routes share these handlers; fiber handlers cannot be
// generic methods, so they are built per gallery.

func visibleImages[T models.HeroImage | models.CarouselImage](g *catalog.Gallery[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.RespondWithJSON(c, fiber.StatusOK, g.Visible(c.UserContext()))
	}
}

func listImages[T models.HeroImage | models.CarouselImage](g *catalog.Gallery[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		images, err := g.List(c.UserContext())
		if err != nil {
			return err
		}
		return utils.RespondWithJSON(c, fiber.StatusOK, images)
	}
}

func addImage[T models.HeroImage | models.CarouselImage](h *ApplicationHandler, g *catalog.Gallery[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, fh, err := formFile(c)
		if err != nil {
			return err
		}
		defer fh.Close()

		img, err := g.Add(c.UserContext(), file.Filename, contentType(file), fh, utils.SanitizeInput(c.FormValue("alt_text")))
		if err != nil {
			return err
		}
		h.Logger.WithField("filename", file.Filename).Info("Image added")
		return utils.RespondWithJSON(c, fiber.StatusCreated, img)
	}
}

func deleteImage[T models.HeroImage | models.CarouselImage](g *catalog.Gallery[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := g.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return utils.RespondWithMessage(c, fiber.StatusOK, "Image deleted")
	}
}

func reorderImages[T models.HeroImage | models.CarouselImage](h *ApplicationHandler, g *catalog.Gallery[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ReorderRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}
		report, err := g.Reorder(c.UserContext(), req.IDs)
		if err != nil {
			return utils.RespondWithAppError(c, err, report)
		}
		return utils.RespondWithJSON(c, fiber.StatusOK, report)
	}
}
