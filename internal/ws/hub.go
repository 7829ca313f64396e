package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/mondedelice/bakery-backend/internal/logger"
)

// Hub diffuse les mises à jour de compteurs de likes à tous les clients
// WebSocket connectés. Les clients ne publient rien: le flux est
// unidirectionnel, serveur vers navigateur.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub crée un hub vide.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 32),
	}
}

// Run fait tourner la boucle principale du hub.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case payload := <-h.broadcast:
			h.send(payload)
		}
	}
}

// Register ajoute un client.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister retire un client.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastLikes pousse le nouveau total de likes d'une réalisation à tous
// les clients connectés. Implémente service.LikeBroadcaster.
func (h *Hub) BroadcastLikes(blogID uuid.UUID, likes int) {
	payload, err := json.Marshal(map[string]any{
		"type": "blog:likes",
		"data": map[string]any{
			"blogId": blogID,
			"likes":  likes,
		},
	})
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Error("ws: sérialisation du message impossible")
		}
		return
	}

	// Envoi non bloquant: si la boucle du hub est saturée, le message est
	// abandonné et les clients resynchronisent via GET like-status.
	select {
	case h.broadcast <- payload:
	default:
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

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) send(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Client trop lent: on abandonne ce message plutôt que de
			// bloquer la diffusion aux autres.
		}
	}
}
