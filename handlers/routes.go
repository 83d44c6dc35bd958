package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/swaggo/swag"

	"bakerysite/api-gateway/middleware"
	"bakerysite/api-gateway/utils"
)

// NewRouter builds the fiber app with middleware and every route.
func NewRouter(h *ApplicationHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bakery-api-gateway",
		ErrorHandler: utils.ErrorHandler(h.Logger),
		BodyLimit:    h.Config.MaxUploadBytes,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: h.Config.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(middleware.RequestLogger(h.Logger))

	apiV1 := app.Group("/api/v1")

	// Public routes
	apiV1.Get("/health", h.Health)
	apiV1.Get("/swagger/doc.json", serveDoc)
	apiV1.Get("/swagger/*", fiberSwagger.WrapHandler)
	apiV1.Get("/jobs", h.ListOpenJobs)
	apiV1.Post("/applications", h.SubmitApplication)
	apiV1.Post("/applications/cv", h.UploadCV)
	apiV1.Post("/orders", h.SubmitOrder)
	apiV1.Get("/products", h.ListActiveProducts)
	apiV1.Get("/hero-images", visibleImages(h.Catalog.HeroImages))
	apiV1.Get("/carousel-images", visibleImages(h.Catalog.CarouselImages))

	// Admin routes
	admin := apiV1.Group("/admin", middleware.AdminAuth(h.Config.AdminUser, h.Config.AdminPassword))
	admin.Get("/status", h.GetStatus)
	admin.Post("/reset", h.ResetDatabase)

	jobs := admin.Group("/jobs")
	jobs.Get("", h.ListJobs)
	jobs.Post("", h.CreateJob)
	jobs.Delete("", h.DeleteAllJobs)
	jobs.Post("/activate-all", h.ActivateAllJobs)
	jobs.Post("/deactivate-all", h.DeactivateAllJobs)
	jobs.Patch("/:id", h.UpdateJob)
	jobs.Delete("/:id", h.DeleteJob)
	jobs.Post("/:id/toggle", h.ToggleJob)

	applications := admin.Group("/applications")
	applications.Get("", h.ListApplications)
	applications.Patch("/:id/status", h.UpdateApplicationStatus)
	applications.Delete("/:id", h.DeleteApplication)

	products := admin.Group("/products")
	products.Get("", h.ListProducts)
	products.Post("", h.CreateProduct)
	products.Put("/order", h.ReorderProducts)
	products.Post("/image", h.UploadProductImage)
	products.Patch("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)
	products.Post("/:id/toggle", h.ToggleProduct)

	hero := admin.Group("/hero-images")
	hero.Get("", listImages(h.Catalog.HeroImages))
	hero.Post("", addImage(h, h.Catalog.HeroImages))
	hero.Put("/order", reorderImages(h, h.Catalog.HeroImages))
	hero.Delete("/:id", deleteImage(h.Catalog.HeroImages))

	carousel := admin.Group("/carousel-images")
	carousel.Get("", listImages(h.Catalog.CarouselImages))
	carousel.Post("", addImage(h, h.Catalog.CarouselImages))
	carousel.Put("/order", reorderImages(h, h.Catalog.CarouselImages))
	carousel.Delete("/:id", deleteImage(h.Catalog.CarouselImages))

	orders := admin.Group("/orders")
	orders.Get("", h.ListOrders)
	orders.Patch("/:id/status", h.UpdateOrderStatus)
	orders.Delete("/:id", h.DeleteOrder)

	return app
}

func serveDoc(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "API documentation is not registered")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
