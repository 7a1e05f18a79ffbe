package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub             *brackets.Hub
	divisionService services.DivisionService
	upgrader        websocket.Upgrader
	logger          *slog.Logger
}

// NewWebSocketHandler builds the subscription handler. allowedOrigins uses the
// same list as CORS; "*" accepts any origin.
func NewWebSocketHandler(hub *brackets.Hub, ds services.DivisionService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:             hub,
		divisionService: ds,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}

// ServeWs subscribes the client to BRACKET_UPDATED messages for one division.
// @Summary Live bracket updates
// @Tags playoffs
// @Param divisionID path int true "Division ID"
// @Success 101
// @Failure 404 {object} map[string]string
// @Router /ws/divisions/{divisionID} [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	divisionID, err := getIDFromURL(r, "divisionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.divisionService.GetDivision(r.Context(), divisionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", slog.Int("division_id", divisionID), slog.Any("error", err))
		return
	}

	client := brackets.NewClient(h.hub, conn, brackets.DivisionRoom(divisionID))
	if !h.hub.Subscribe(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
