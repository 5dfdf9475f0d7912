package services

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher sends a message body to an exchange. *rabbitmq.Client satisfies it.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ActivityRelay forwards store events to a message broker for analytics.
// Delivery is best effort: failures are logged and never reach the store.
type ActivityRelay struct {
	bus       EventBus.Bus
	publisher Publisher
	exchange  string
	logger    *zap.Logger
	handler   func(StoreEvent)
}

// NewActivityRelay creates a relay from bus to publisher.
func NewActivityRelay(bus EventBus.Bus, publisher Publisher, exchange string, logger *zap.Logger) *ActivityRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ActivityRelay{
		bus:       bus,
		publisher: publisher,
		exchange:  exchange,
		logger:    logger,
	}
	r.handler = r.forward
	return r
}

// Start subscribes to every store topic. Events are forwarded asynchronously,
// one at a time per topic.
func (r *ActivityRelay) Start() error {
	for _, topic := range StoreTopics {
		if err := r.bus.SubscribeAsync(topic, r.handler, true); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	r.logger.Info("activity relay started", zap.String("exchange", r.exchange))
	return nil
}

// Stop unsubscribes from every store topic.
func (r *ActivityRelay) Stop() error {
	var errs []error
	for _, topic := range StoreTopics {
		if err := r.bus.Unsubscribe(topic, r.handler); err != nil {
			errs = append(errs, fmt.Errorf("failed to unsubscribe from %s: %w", topic, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred while stopping activity relay: %v", errs)
	}
	return nil
}

func (r *ActivityRelay) forward(evt StoreEvent) {
	body, err := json.Marshal(evt)
	if err != nil {
		r.logger.Warn("failed to marshal store event", zap.String("event_id", evt.ID), zap.Error(err))
		return
	}
	if err := r.publisher.Publish(r.exchange, evt.Topic, body); err != nil {
		r.logger.Warn("failed to publish store event",
			zap.String("event_id", evt.ID),
			zap.String("topic", evt.Topic),
			zap.Error(err),
		)
		return
	}
	r.logger.Debug("published store event", zap.String("event_id", evt.ID), zap.String("topic", evt.Topic))
}
