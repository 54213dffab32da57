package hub

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Время на запись одного сообщения
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Период ping, меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// Клиент ничего полезного не присылает, только управляющие кадры
	maxMessageSize = 512

	sendBufferSize = 16
)

// Client Одно подключение к потоку анализа
type Client struct {
	ID   string
	conn *websocket.Conn
	Send chan Message
	hub  *Hub
}

func NewClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:   id,
		conn: conn,
		Send: make(chan Message, sendBufferSize),
		hub:  hub,
	}
}

// ReadPump Читает соединение до закрытия, чтобы обрабатывать pong и close
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.ID).Msg("unexpected stream close")
			}
			return
		}
	}
}

// WritePump Пишет сообщения хаба в соединение и шлет ping
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message, ok := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл канал
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				log.Warn().Err(err).Str("client_id", c.ID).Msg("stream write failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend Неблокирующая отправка, false если буфер клиента полон
func (c *Client) TrySend(msg Message) bool {
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}
