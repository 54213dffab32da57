package hub

import (
	"context"
	"net/http"

	"roulette_tracker/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type HandlerDeps struct {
	Hub  *Hub
	Serv service.PanelService
	// Ctx живет дольше запроса, по нему закрываются соединения при остановке
	Ctx context.Context
}

type Handler struct {
	hub  *Hub
	serv service.PanelService
	ctx  context.Context
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		hub:  deps.Hub,
		serv: deps.Serv,
		ctx:  deps.Ctx,
	}
}

// Stream Подключает клиента к потоку. Первым кадром приходит текущий анализ.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	analysis, err := h.serv.Analysis(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("initial analysis failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := NewClient(uuid.New().String(), conn, h.hub)
	c.TrySend(newAnalysisMessage(*analysis))
	h.hub.Register(c)

	go c.WritePump(h.ctx)
	go c.ReadPump()
}
