package server

import (
	"errors"
	"time"

	"dama/config"
	"dama/gamemaster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

// Server exposes game sessions over HTTP and streams their updates over WebSocket.
type Server struct {
	app      *fiber.App
	cfg      config.Config
	registry *gamemaster.Registry
}

func New(cfg config.Config, registry *gamemaster.Registry) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "dama",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	s.app.Use(requestLogger())

	// Set up WebSocket routes
	s.app.Use("/ws", upgradeOnly())
	s.app.Get("/ws/sessions/:id", s.loadSession, websocket.New(s.streamSession))

	// Set up REST routes
	api := s.app.Group("/api")
	sessions := api.Group("/sessions")
	sessions.Post("/", s.createSession)
	sessions.Get("/:id", s.loadSession, s.getSession)
	sessions.Delete("/:id", s.loadSession, s.deleteSession)
	sessions.Post("/:id/moves", s.loadSession, s.playMove)
	sessions.Post("/:id/restart", s.loadSession, s.restartSession)

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	log.Info().Msgf("listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("request")
		return err
	}
}

// upgradeOnly rejects plain HTTP requests to WebSocket endpoints.
func upgradeOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// sessionError maps session failures onto HTTP status codes.
func sessionError(err error) error {
	switch {
	case errors.Is(err, gamemaster.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, gamemaster.ErrIllegalMove):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gamemaster.ErrGameOver),
		errors.Is(err, gamemaster.ErrNotYourTurn),
		errors.Is(err, gamemaster.ErrPositionChanged):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return err
}
