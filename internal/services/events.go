package services

import (
	"time"

	"github.com/google/uuid"
)

// Event bus topics published by CommerceStore.
const (
	TopicCart     = "store:cart"
	TopicWishlist = "store:wishlist"
	TopicCriteria = "store:criteria"
)

// StoreTopics lists every topic the store publishes on.
var StoreTopics = []string{TopicCart, TopicWishlist, TopicCriteria}

// StoreEvent describes one applied mutation.
type StoreEvent struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Action    string    `json:"action"`
	Version   uint64    `json:"version"`
	ProductID string    `json:"product_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	At        time.Time `json:"at"`
}

func newStoreEvent(topic, action string, version uint64, productID string, quantity int, at time.Time) StoreEvent {
	return StoreEvent{
		ID:        uuid.New().String(),
		Topic:     topic,
		Action:    action,
		Version:   version,
		ProductID: productID,
		Quantity:  quantity,
		At:        at,
	}
}
