package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"pinboard/internal/bootstrap"
	"pinboard/internal/config"
	"pinboard/internal/pkg/serverutils"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
	log *zap.Logger
}

func New(cfg *config.Config, container *bootstrap.Container, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, image uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(serverutils.ErrorHandlerMiddleware(log))

	app.Static("/uploads", cfg.App.UploadDir)

	registerRoutes(app, container)

	return &Server{app: app, cfg: cfg, log: log}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("port", s.cfg.App.Port))
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.CanvasController.RegisterRoutes(api)
	c.TabController.RegisterRoutes(api)
	c.NoteController.RegisterRoutes(api)
	c.ShareController.RegisterRoutes(api)
	c.UploadController.RegisterRoutes(api)

	c.ShareController.RegisterPublicRoutes(app)
}
