// Package http содержит компоненты для HTTP сервера.
package http

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"contactbook/internal/contacts/adapters/http/contacts"
	"contactbook/internal/contacts/adapters/http/middleware"
	"contactbook/internal/contacts/app/dto"
	"contactbook/internal/contacts/config"
	"contactbook/internal/contacts/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, corsCfg *config.CORSConfig, contactService services.ContactService) {
	contactHandler := contacts.NewHandler(contactService)

	// Middleware для всех запросов.
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsCfg.AllowOrigins,
		AllowMethods: corsCfg.AllowMethods,
		AllowHeaders: corsCfg.AllowHeaders,
	}))
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Маршруты контактов.
	api := app.Group("/api")
	contactRoutes := api.Group("/contacts")
	contactRoutes.Get("/", contactHandler.ListContacts)
	contactRoutes.Get("/filter/:field/:value", contactHandler.FilterContacts)
	contactRoutes.Get("/:id", contactHandler.GetContact)
	contactRoutes.Post("/", contactHandler.CreateContact)
	contactRoutes.Put("/:id", contactHandler.UpdateContact)
	contactRoutes.Delete("/:id", contactHandler.DeleteContact)

	// Демонстрационные маршруты без бизнес-смысла.
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Contacts API")
	})
	app.Get("/:id/:name", func(c fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("Hello %s, id %s", c.Params("name"), c.Params("id")))
	})

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Problem{
			Title:  "Not Found",
			Detail: "route not found",
		})
	})
}
