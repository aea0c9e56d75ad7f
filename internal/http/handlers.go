package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/scoreboard"
)

type nowFunc func() time.Time

// BoardReader exposes the board currently on screen.
type BoardReader interface {
	Current() scoreboard.Board
}

// HealthResponse describes the most recent refresh.
type HealthResponse struct {
	Status      string `json:"status"`
	State       string `json:"state"`
	Rows        int    `json:"rows"`
	RefreshID   string `json:"refreshId,omitempty"`
	RefreshedAt string `json:"refreshedAt,omitempty"`
	Error       string `json:"error,omitempty"`
	Time        string `json:"time"`
}

// Handler serves the status endpoints next to /metrics.
type Handler struct {
	boards BoardReader
	logger *slog.Logger
	now    nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(boards BoardReader, logger *slog.Logger) *Handler {
	return &Handler{
		boards: boards,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports liveness plus a summary of the board on screen.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := HealthResponse{
		Status: "ok",
		State:  scoreboard.StateIdle.String(),
		Time:   h.now().UTC().Format(time.RFC3339),
	}
	if h.boards != nil {
		board := h.boards.Current()
		resp.State = board.State.String()
		resp.Rows = len(board.Rows)
		resp.RefreshID = board.RefreshID
		if !board.RefreshedAt.IsZero() {
			resp.RefreshedAt = board.RefreshedAt.UTC().Format(time.RFC3339)
		}
		if board.Failed() {
			resp.Status = "degraded"
			resp.Error = board.Err.Error()
		}
	}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
