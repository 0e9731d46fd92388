package handlers

import (
	"log"
	"net/http"

	"github.com/M-odou/forumassirou-sub000/internal/services"
	"github.com/M-odou/forumassirou-sub000/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub         *ws.Hub
	authService *services.AuthService
	scanAPIKey  string
}

func NewWSHandler(hub *ws.Hub, authService *services.AuthService, scanAPIKey string) *WSHandler {
	return &WSHandler{hub: hub, authService: authService, scanAPIKey: scanAPIKey}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for admin dashboard updates
// @Description  Pushes a participants_changed event after every store mutation. Requires the scan device key or an admin JWT passed as a token query parameter (browsers cannot set headers on a websocket handshake).
// @Tags         websocket
// @Param        X-Scan-API-Key header string false "Scan device key"
// @Param        token query string false "Admin JWT"
// @Router       /ws/admin [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authorization required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *WSHandler) authorized(c *gin.Context) bool {
	if key := c.GetHeader("X-Scan-API-Key"); key != "" && key == h.scanAPIKey {
		return true
	}
	if token := c.Query("token"); token != "" {
		if _, err := h.authService.ValidateToken(token); err == nil {
			return true
		}
	}
	return false
}
