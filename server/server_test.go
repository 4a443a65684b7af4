package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dama/config"
	"dama/game"
	"dama/gamemaster"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.ThinkDelay = 0
	cfg.Game.Depths = map[config.Difficulty]int{config.Easy: 1, config.Medium: 1, config.Hard: 2}
	return New(cfg, gamemaster.NewRegistry())
}

func do(t *testing.T, s *Server, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func createSession(t *testing.T, s *Server) gamemaster.Snapshot {
	t.Helper()
	status, body := do(t, s, http.MethodPost, "/api/sessions", `{"name":"ada","difficulty":"easy"}`)
	require.Equal(t, http.StatusCreated, status, string(body))

	var snapshot gamemaster.Snapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	return snapshot
}

func TestSessions(t *testing.T) {
	t.Run("creates a session", func(t *testing.T) {
		s := newTestServer(t)

		snapshot := createSession(t, s)

		require.NotEmpty(t, snapshot.ID)
		require.Equal(t, "ada", snapshot.Name)
		require.Equal(t, config.Easy, snapshot.Difficulty)
		require.Equal(t, game.Blue, snapshot.ToMove)
		require.Equal(t, game.CreateInitialBoard(), snapshot.Board)
		require.NotEmpty(t, snapshot.LegalMoves)
	})

	t.Run("rejects an unknown difficulty", func(t *testing.T) {
		status, body := do(t, newTestServer(t), http.MethodPost, "/api/sessions", `{"name":"ada","difficulty":"impossible"}`)

		require.Equal(t, http.StatusBadRequest, status)
		require.Contains(t, string(body), "error")
	})

	t.Run("gets a session", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, body := do(t, s, http.MethodGet, "/api/sessions/"+created.ID, "")

		require.Equal(t, http.StatusOK, status)
		var snapshot gamemaster.Snapshot
		require.NoError(t, json.Unmarshal(body, &snapshot))
		require.Equal(t, created.ID, snapshot.ID)
	})

	t.Run("unknown session", func(t *testing.T) {
		status, _ := do(t, newTestServer(t), http.MethodGet, "/api/sessions/missing", "")

		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("deletes a session", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, _ := do(t, s, http.MethodDelete, "/api/sessions/"+created.ID, "")
		require.Equal(t, http.StatusNoContent, status)

		status, _ = do(t, s, http.MethodGet, "/api/sessions/"+created.ID, "")
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestMoves(t *testing.T) {
	t.Run("plays the move and the computer reply", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, body := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/moves",
			`{"move":{"from":{"row":5,"col":3},"to":{"row":4,"col":3}}}`)

		require.Equal(t, http.StatusOK, status, string(body))
		var snapshot gamemaster.Snapshot
		require.NoError(t, json.Unmarshal(body, &snapshot))
		require.Equal(t, game.Blue, snapshot.ToMove)
		require.Equal(t, 2, snapshot.Moves)
		require.NotNil(t, snapshot.Board[4][3])
		require.NotNil(t, snapshot.LastMove)
		reply := snapshot.Board[snapshot.LastMove.To.Row][snapshot.LastMove.To.Col]
		require.NotNil(t, reply)
		require.Equal(t, game.Yellow, reply.Side)
	})

	t.Run("rejects an illegal move", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, _ := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/moves",
			`{"move":{"from":{"row":5,"col":3},"to":{"row":3,"col":3}}}`)

		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, _ := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/moves", `{"move":`)

		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown session", func(t *testing.T) {
		status, _ := do(t, newTestServer(t), http.MethodPost, "/api/sessions/missing/moves",
			`{"move":{"from":{"row":5,"col":3},"to":{"row":4,"col":3}}}`)

		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("rejects moves once the game is over", func(t *testing.T) {
		cfg := config.Default()
		cfg.Game.TimeLimit = time.Nanosecond
		s := New(cfg, gamemaster.NewRegistry())
		created := createSession(t, s)
		time.Sleep(time.Millisecond)

		status, _ := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/moves",
			`{"move":{"from":{"row":5,"col":3},"to":{"row":4,"col":3}}}`)
		require.Equal(t, http.StatusConflict, status)

		status, body := do(t, s, http.MethodGet, "/api/sessions/"+created.ID, "")
		require.Equal(t, http.StatusOK, status)
		var snapshot gamemaster.Snapshot
		require.NoError(t, json.Unmarshal(body, &snapshot))
		require.Equal(t, game.YellowWins, snapshot.Outcome)
		require.Empty(t, snapshot.LegalMoves)
	})
}

func TestRestart(t *testing.T) {
	t.Run("starts over with the same settings", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)
		status, _ := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/moves",
			`{"move":{"from":{"row":5,"col":3},"to":{"row":4,"col":3}}}`)
		require.Equal(t, http.StatusOK, status)

		status, body := do(t, s, http.MethodPost, "/api/sessions/"+created.ID+"/restart", "")

		require.Equal(t, http.StatusOK, status)
		var snapshot gamemaster.Snapshot
		require.NoError(t, json.Unmarshal(body, &snapshot))
		require.Equal(t, created.ID, snapshot.ID)
		require.Equal(t, "ada", snapshot.Name)
		require.Equal(t, 0, snapshot.Moves)
		require.Equal(t, game.CreateInitialBoard(), snapshot.Board)
	})
}

func TestWebSocket(t *testing.T) {
	t.Run("plain requests need an upgrade", func(t *testing.T) {
		s := newTestServer(t)
		created := createSession(t, s)

		status, _ := do(t, s, http.MethodGet, "/ws/sessions/"+created.ID, "")

		require.Equal(t, http.StatusUpgradeRequired, status)
	})
}
