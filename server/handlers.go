package server

import (
	"errors"
	"time"

	"dama/config"
	"dama/game"
	"dama/gamemaster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

const sessionKey = "session"

type createRequest struct {
	Name       string            `json:"name"`
	Difficulty config.Difficulty `json:"difficulty"`
}

type moveRequest struct {
	Move game.Move `json:"move"`
}

// loadSession resolves the :id parameter. The session is stored in locals so that it survives
// the WebSocket upgrade.
func (s *Server) loadSession(c *fiber.Ctx) error {
	session, err := s.registry.Get(c.Params("id"))
	if err != nil {
		return sessionError(err)
	}
	c.Locals(sessionKey, session)
	return c.Next()
}

func (s *Server) createSession(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	settings, err := gamemaster.NewSettings(s.cfg, req.Name, req.Difficulty)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := s.registry.Create(settings)
	return c.Status(fiber.StatusCreated).JSON(session.Snapshot())
}

func (s *Server) getSession(c *fiber.Ctx) error {
	session := c.Locals(sessionKey).(*gamemaster.Session)
	session.CheckClock()
	return c.JSON(session.Snapshot())
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	session := c.Locals(sessionKey).(*gamemaster.Session)
	s.registry.Delete(session.ID())
	return c.SendStatus(fiber.StatusNoContent)
}

// playMove applies the human move and answers with the position after the computer's reply.
func (s *Server) playMove(c *fiber.Ctx) error {
	session := c.Locals(sessionKey).(*gamemaster.Session)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	session.CheckClock()
	if err := session.Play(req.Move); err != nil {
		return sessionError(err)
	}

	if s.cfg.Server.ThinkDelay > 0 {
		time.Sleep(s.cfg.Server.ThinkDelay)
	}

	// The human move may have ended the game
	if _, err := session.PlayComputer(); err != nil && !errors.Is(err, gamemaster.ErrGameOver) {
		return sessionError(err)
	}

	return c.JSON(session.Snapshot())
}

func (s *Server) restartSession(c *fiber.Ctx) error {
	session := c.Locals(sessionKey).(*gamemaster.Session)
	session.Restart()
	return c.JSON(session.Snapshot())
}

type snapshotMessage struct {
	Type     string              `json:"type"`
	Snapshot gamemaster.Snapshot `json:"snapshot"`
}

// streamSession sends the current snapshot followed by every update of the session until the
// client goes away.
func (s *Server) streamSession(c *websocket.Conn) {
	session := c.Locals(sessionKey).(*gamemaster.Session)
	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	log.Debug().Str("session", session.ID()).Msg("websocket connected")

	if err := c.WriteJSON(snapshotMessage{Type: "snapshot", Snapshot: session.Snapshot()}); err != nil {
		log.Debug().Err(err).Msg("websocket write failed")
		return
	}

	// Clients only listen; a read error means the connection is gone
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				unsubscribe()
				return
			}
		}
	}()

	for u := range updates {
		if err := c.WriteJSON(u); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}

	log.Debug().Str("session", session.ID()).Msg("websocket disconnected")
}
