package mq

import (
	"context"
	"encoding/json"
	"time"

	"cookbook/live"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the redis pub/sub channel change events travel on.
const Channel = "cookbook-events"

const publishTimeout = 2 * time.Second

// Event describes a successful write to a recipe or ingredient.
type Event struct {
	EntityType string    `json:"entity_type"`
	Method     string    `json:"method"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action,omitempty"`
	At         time.Time `json:"at"`
}

// Emitter is notified after every successful mutation. Failures are logged,
// never returned: a lost event must not fail the write that caused it.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

// Nop discards events.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}

// Publisher fans events out to the websocket hub. With redis configured the
// event goes through the channel first, so every instance's Relay delivers
// it to its own subscribers.
type Publisher struct {
	conn *redis.Client
	hub  *live.Hub
	log  *zap.Logger
}

func NewPublisher(conn *redis.Client, hub *live.Hub, log *zap.Logger) *Publisher {
	return &Publisher{conn: conn, hub: hub, log: log}
}

func (p *Publisher) Emit(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}

	if p.conn == nil {
		deliver(p.hub, ev.EntityType, data)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.conn.Publish(ctx, Channel, data).Err(); err != nil {
		p.log.Warn("publish event to redis",
			zap.String("entity_type", ev.EntityType), zap.String("entity_id", ev.EntityID), zap.Error(err))
		// still reach local subscribers
		deliver(p.hub, ev.EntityType, data)
	}
}

// Relay forwards redis events to the local hub until ctx is cancelled.
func (p *Publisher) Relay(ctx context.Context) {
	if p.conn == nil {
		return
	}
	sub := p.conn.Subscribe(ctx, Channel)
	defer sub.Close()
	ch := sub.Channel()

	p.log.Info("relaying change events", zap.String("channel", Channel))
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				p.log.Warn("drop malformed event", zap.Error(err))
				continue
			}
			deliver(p.hub, ev.EntityType, []byte(msg.Payload))
		}
	}
}

func deliver(hub *live.Hub, topic string, data []byte) {
	if hub == nil {
		return
	}
	hub.Broadcast(topic, data)
	hub.Broadcast(live.TopicAll, data)
}
