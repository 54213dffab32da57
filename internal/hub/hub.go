// Package hub Рассылка свежего анализа подключенным клиентам по websocket
package hub

import (
	"context"
	"sync"
	"time"

	dto "roulette_tracker/internal/api/dto/panel"
	"roulette_tracker/internal/converter"
	"roulette_tracker/internal/metrics"
	"roulette_tracker/internal/model"

	"github.com/rs/zerolog/log"
)

const MessageTypeAnalysis = "analysis"

// Message Кадр потока: тип и анализ активного крупье
type Message struct {
	Type      string               `json:"type"`
	Payload   dto.AnalysisResponse `json:"payload"`
	Timestamp int64                `json:"timestamp"` // unix ms
}

func newAnalysisMessage(a model.Analysis) Message {
	return Message{
		Type:      MessageTypeAnalysis,
		Payload:   converter.ToAnalysisResponse(a),
		Timestamp: time.Now().UnixMilli(),
	}
}

// Hub Набор подключенных клиентов. Все изменения набора идут через Run.
type Hub struct {
	clients map[*Client]struct{}
	mtx     sync.RWMutex

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run Основной цикл хаба, работает до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register Добавляет клиента. После остановки хаба ничего не делает.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish Отправляет анализ всем клиентам, при полном буфере кадр теряется
func (h *Hub) Publish(analysis model.Analysis) {
	select {
	case h.broadcast <- newAnalysisMessage(analysis):
	default:
		log.Warn().Msg("broadcast buffer full, dropping analysis")
	}
}

func (h *Hub) ClientCount() int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.clients[c] = struct{}{}
	metrics.StreamClients.Set(float64(len(h.clients)))
	log.Debug().Str("client_id", c.ID).Int("clients", len(h.clients)).Msg("stream client connected")
}

func (h *Hub) unregisterClient(c *Client) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		metrics.StreamClients.Set(float64(len(h.clients)))
		log.Debug().Str("client_id", c.ID).Int("clients", len(h.clients)).Msg("stream client disconnected")
	}
}

func (h *Hub) broadcastMessage(msg Message) {
	h.mtx.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mtx.RUnlock()

	for _, c := range clients {
		if !c.TrySend(msg) {
			// Медленный клиент, отключаем
			log.Warn().Str("client_id", c.ID).Msg("stream client too slow, disconnecting")
			h.unregisterClient(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
	metrics.StreamClients.Set(0)
}
