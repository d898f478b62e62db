package server

import (
	"log/slog"
	"net/http"

	"github.com/nvalerio/wearsync/internal/xhttp/middleware"
)

func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.HandleHealth)

	mux.HandleFunc("GET /api/auth/{provider}/url", h.HandleAuthURL)
	mux.HandleFunc("GET /auth/{provider}/callback", h.HandleCallback)
	mux.HandleFunc("DELETE /api/auth/{provider}", h.HandleDisconnect)
	mux.HandleFunc("GET /api/auth/status", h.HandleStatus)

	mux.HandleFunc("POST /api/sync", h.HandleSync)
	mux.HandleFunc("POST /api/sync/today", h.HandleSyncToday)
	mux.HandleFunc("POST /api/sync/historical", h.HandleSyncHistorical)

	mux.HandleFunc("GET /api/data/{type}", h.HandleData)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(logger),
		middleware.Logging,
	)
}
