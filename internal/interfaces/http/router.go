package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/cretaceous-api/internal/application/usecase"
	"github.com/jhoicas/cretaceous-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnimalUC *usecase.AnimalUseCase
	DB       Pinger
	Log      *logger.Logger
	AppName  string
}

// NewApp construye la app Fiber con recover, log de peticiones y todas las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.DB, deps.AppName).Check)

	api := app.Group("/api")

	// /page/:page y /random antes de /:id
	animals := api.Group("/animals")
	animalHandler := NewAnimalHandler(deps.AnimalUC, deps.Log)
	animals.Get("/page/:page", animalHandler.GetPages)
	animals.Get("/random", animalHandler.RandomOne)
	animals.Get("/", animalHandler.List)
	animals.Post("/", animalHandler.Create)
	animals.Get("/:id", animalHandler.GetOne)
	animals.Put("/:id", animalHandler.Update)
	animals.Delete("/:id", animalHandler.Delete)
}
