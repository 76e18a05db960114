package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Mensagens enfileiradas por cliente antes de desconectá-lo
	sendBuffer = 16
)

// feedEvent é o payload enviado aos assinantes do mural
type feedEvent struct {
	ID         uint      `json:"id"`
	FromEmail  string    `json:"from_email"`
	ToEmail    string    `json:"to_email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
	IsFeedback bool      `json:"is_feedback"`
}

// FeedHub distribui mensagens do mural para os clientes websocket
// conectados. Implementa ports.FeedPublisher: a entrega é best-effort
// e nunca bloqueia quem publica.
type FeedHub struct {
	logger   ports.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan feedEvent
}

// NewFeedHub cria um novo hub do mural
func NewFeedHub(logger ports.Logger) *FeedHub {
	return &FeedHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A autenticação acontece no middleware antes do upgrade
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Publish envia a mensagem para todos os clientes conectados.
// Clientes com fila cheia são descartados em vez de bloquear.
func (h *FeedHub) Publish(msg *entities.Message) {
	event := feedEvent{
		ID:         msg.ID,
		FromEmail:  msg.FromEmail,
		ToEmail:    msg.ToEmail,
		Subject:    msg.Subject,
		Body:       msg.Body,
		SentAt:     msg.SentAt,
		IsFeedback: msg.IsFeedback,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- event:
		default:
			// Cliente lento: fechar a fila força o writer a encerrar
			go h.drop(c)
		}
	}
}

// Handle faz o upgrade da conexão e registra o cliente no hub
func (h *FeedHub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan feedEvent, sendBuffer),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug("feed client connected", "clients", count)

	go h.writePump(cl)
	go h.readPump(cl)
}

// Close desconecta todos os clientes. Usado no shutdown do servidor.
func (h *FeedHub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
		// Fechar sob o lock garante que nenhum Publish concorrente
		// ainda escreve nesta fila
		close(c.send)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (h *FeedHub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.mu.Unlock()

	_ = c.conn.Close()
}

// readPump descarta tudo que o cliente envia e detecta desconexões.
// O mural é somente-leitura do lado do cliente.
func (h *FeedHub) readPump(c *client) {
	defer h.drop(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *FeedHub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
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
