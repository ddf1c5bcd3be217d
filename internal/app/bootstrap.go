package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mentor-match/internal/config"
	"mentor-match/internal/database"
	"mentor-match/internal/database/migration"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/delivery/http/routes"
	"mentor-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(cfg config.Config, db database.DB, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	hub := ws.NewHub(logger)
	go hub.Run()

	registerGlobalMiddleware(f, cfg, logger)
	routes.Register(f, cfg, db, hub, logger)

	return &App{Fiber: f, Hub: hub}
}

// Bootstrap connects the database, applies pending migrations and builds
// the HTTP app. The returned cleanup closes the pool.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := runner.Run(ctx, container.DB.SQLDB()); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	app := New(cfg, container.DB, log.Default())
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderAuthorization, fiber.HeaderContentType},
		AllowCredentials: true,
	}))

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
