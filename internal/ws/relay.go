package ws

import (
	"context"
	"encoding/json"
	"log"

	"job-board/internal/domain/event"
)

// Bus is a pub/sub channel shared by every server instance.
type Bus interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string, handle func(payload []byte)) error
}

// BusPublisher sends events through the bus so clients connected to any
// instance receive them. When the bus rejects a message it is delivered to
// the local hub only.
type BusPublisher struct {
	bus     Bus
	channel string
	local   *Hub
	logger  *log.Logger
}

func NewBusPublisher(bus Bus, channel string, local *Hub, logger *log.Logger) *BusPublisher {
	return &BusPublisher{bus: bus, channel: channel, local: local, logger: logger}
}

func (p *BusPublisher) Publish(ctx context.Context, evt event.Event) {
	b, err := json.Marshal(evt)
	if err != nil {
		p.logf("[WS] encode event failed type=%s err=%v", evt.Type, err)
		return
	}
	if err := p.bus.Publish(ctx, p.channel, b); err != nil {
		p.logf("[WS] bus publish failed, delivering locally type=%s err=%v", evt.Type, err)
		p.local.Broadcast(evt.Topic, b)
	}
}

func (p *BusPublisher) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

// Relay feeds events received on the bus channel into hub until ctx is done.
func Relay(ctx context.Context, bus Bus, channel string, hub *Hub) error {
	return bus.Subscribe(ctx, channel, func(payload []byte) {
		var env struct {
			Topic string `json:"topic"`
		}
		if err := json.Unmarshal(payload, &env); err != nil || env.Topic == "" {
			hub.logf("[WS] relay skipped malformed event err=%v", err)
			return
		}
		hub.Broadcast(env.Topic, payload)
	})
}
