package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

// Hub fans table snapshots out to the connected websocket clients.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run dispatches registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			close(client.send)
		}
		close(h.done)
	}()
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("ws client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("ws client disconnected", "clients", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.logger.Warn("ws client too slow, dropping it")
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// Register adds a client. Broadcasts sent after Register returns reach it.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast sends the table to every registered client.
func (h *Hub) Broadcast(view solitaire.View) {
	data, err := json.Marshal(view)
	if err != nil {
		h.logger.Error("marshal view", "error", err.Error())
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}
