package routes

import (
	"log"

	"mentor-match/internal/config"
	"mentor-match/internal/database"
	"mentor-match/internal/delivery/http/handler"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/repository"
	"mentor-match/internal/usecase"
	"mentor-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app.
func Register(app *fiber.App, cfg config.Config, db database.DB, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	matchRepo := repository.NewPostgresMatchRequestRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo, ws.NewMatchNotifier(hub))

	rootHandler := handler.NewRootHandler()
	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(profileUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	imageHandler := handler.NewImageHandler(profileUC)
	wsHandler := ws.NewHandler(hub, jwtSvc, logger)

	rootHandler.RegisterRoutes(app)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)

	protected := api.Group("", authMw.Middleware())
	userHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected.Group("/match-requests"))

	images := app.Group("/images", authMw.Middleware())
	imageHandler.RegisterRoutes(images)

	app.Get("/ws/notifications", wsHandler.HandleNotifications)
}
