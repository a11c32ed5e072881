package application

import (
	"fmt"

	"ccx-marketplace/config"
	"ccx-marketplace/util/logger"

	"github.com/gofiber/fiber/v3"
)

type Application struct {
	config     config.Config
	httpServer HTTPServer
}

func New(config config.Config) *Application {
	return &Application{
		config:     config,
		httpServer: newHTTPServer(config),
	}
}

func (app *Application) Run() error {
	app.httpServer.Start()

	return nil
}

func (app *Application) Shutdown() error {
	logger.Log().Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		logger.Log().Fatal(fmt.Sprintf("Error shutting down server: %v", err))
	}
	logger.Log().Info("Server stopped")

	return nil
}

// Group exposes a base router (e.g. /api) for route registration.
func (app *Application) Group(prefix string) fiber.Router {
	return app.httpServer.Group(prefix)
}
