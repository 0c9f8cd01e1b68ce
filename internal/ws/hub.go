package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"job-board/internal/domain/event"
)

type delivery struct {
	topic   string
	payload []byte
}

// Hub fans messages out to the clients subscribed to a topic. Topics are
// "user:<id>" and "company:<id>" (see event.UserTopic, event.CompanyTopic).
type Hub struct {
	clients    map[*Client]struct{}
	topics     map[string]map[*Client]struct{}
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		topics:     make(map[string]map[*Client]struct{}),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns client registration and delivery until ctx is done. It must be
// called at most once; after it returns Register and Unregister no longer
// block and every client's WritePump exits.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = struct{}{}
			for _, t := range client.topics {
				if h.topics[t] == nil {
					h.topics[t] = make(map[*Client]struct{})
				}
				h.topics[t][client] = struct{}{}
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("[WS] connected topics=%v total_clients=%d", client.topics, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.remove(client)
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("[WS] disconnected total_clients=%d", total)

		case d := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.topics[d.topic]))
			for c := range h.topics[d.topic] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			var slow []*Client
			for _, client := range targets {
				select {
				case client.send <- d.payload:
				default:
					slow = append(slow, client)
				}
			}
			if len(slow) > 0 {
				h.mutex.Lock()
				for _, c := range slow {
					h.remove(c)
				}
				h.mutex.Unlock()
			}
		}
	}
}

// remove must be called with the write lock held.
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for _, t := range client.topics {
		delete(h.topics[t], client)
		if len(h.topics[t]) == 0 {
			delete(h.topics, t)
		}
	}
	close(client.send)
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.clients {
		h.remove(c)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.done
}

// Broadcast queues message for every client subscribed to topic. It never
// blocks; when the queue is full the message is dropped.
func (h *Hub) Broadcast(topic string, message []byte) {
	if h == nil || topic == "" {
		return
	}
	select {
	case h.deliver <- delivery{topic: topic, payload: message}:
	default:
		h.logf("[WS] broadcast dropped topic=%s reason=buffer_full", topic)
	}
}

// Publish delivers evt to the local clients of evt.Topic.
func (h *Hub) Publish(_ context.Context, evt event.Event) {
	b, err := json.Marshal(evt)
	if err != nil {
		h.logf("[WS] encode event failed type=%s err=%v", evt.Type, err)
		return
	}
	h.Broadcast(evt.Topic, b)
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) logf(format string, args ...any) {
	if h != nil && h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
