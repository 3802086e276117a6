package sse

import (
	"context"
	"sync"

	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

// Client is a single /events watcher.
type Client struct {
	Ch chan model.Entry
}

// Hub fans created entries out to every connected watcher. The feed is
// global; there is no per-client filtering.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan model.Entry
	clients    map[*Client]struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan model.Entry, 64),
		clients:    make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) Broadcast(entry model.Entry) {
	h.broadcast <- entry
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case entry := <-h.broadcast:
			h.broadcastEntry(entry)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) broadcastEntry(entry model.Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Ch <- entry:
		default:
			// Drop if the client is too slow.
		}
	}
}
