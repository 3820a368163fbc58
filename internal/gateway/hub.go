// Package gateway fans decision and snapshot streams out to dashboard
// clients over WebSocket. It subscribes to the engine's Redis PubSub
// channels and re-broadcasts every message in a channel-tagged envelope;
// the statistical engine knows nothing about it.
package gateway

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// Hub manages WebSocket clients and Redis PubSub fan-out.
type Hub struct {
	Rdb *goredis.Client

	mu      sync.RWMutex
	clients map[*Client]bool
	// latest caches the most recent payload per channel so a newly
	// connected dashboard renders immediately instead of waiting for the
	// next bar.
	latest map[string]latestEntry
}

type latestEntry struct {
	Data []byte
	TS   time.Time
}

// NewHub creates a Hub backed by the given Redis client.
func NewHub(rdb *goredis.Client) *Hub {
	return &Hub{
		Rdb:     rdb,
		clients: make(map[*Client]bool),
		latest:  make(map[string]latestEntry),
	}
}

// AddClient registers a client and replays the latest state to it.
func (h *Hub) AddClient(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("[gateway] ws client connected (%d total)", n)

	c.sendInitialState()
}

// RemoveClient unregisters a client.
func (h *Hub) RemoveClient(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Run subscribes to the decision and snapshot channel patterns and routes
// every message to the connected clients. Blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.Rdb.PSubscribe(ctx, "pub:decision:*", "pub:snapshot:*")
	defer pubsub.Close()

	log.Println("[gateway] subscribed to decision/snapshot channels")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(msg.Channel, []byte(msg.Payload))
		}
	}
}

// broadcast wraps payload in a channel-tagged envelope and fans it out.
// Slow clients are skipped, never blocked on.
func (h *Hub) broadcast(channel string, payload []byte) {
	envelope, err := json.Marshal(map[string]interface{}{
		"channel": channel,
		"data":    json.RawMessage(payload),
		"ts":      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		log.Printf("[gateway] envelope marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	h.latest[channel] = latestEntry{Data: payload, TS: time.Now().UTC()}
	for c := range h.clients {
		select {
		case c.send <- envelope:
		default:
			// client write queue full, drop
		}
	}
	h.mu.Unlock()
}
