package services

import (
	"sync"
	"time"

	"etalase/internal/catalog"
	"etalase/internal/models"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// CommerceStore is the single source of truth for cart, wishlist and the
// active filter/sort/search criteria. Construct one per application with
// NewCommerceStore and pass it to every consumer that needs it.
//
// Mutators run to completion under a write lock and readers receive copies,
// so no reader observes a partially applied change.
type CommerceStore struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	bus     EventBus.Bus
	now     func() time.Time

	mu       sync.RWMutex
	cart     []models.CartLine
	wishlist []models.WishlistEntry
	criteria models.FilterCriteria
	version  uint64
}

// StoreOption configures a CommerceStore.
type StoreOption func(*CommerceStore)

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *CommerceStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventBus publishes change notifications on bus.
func WithEventBus(bus EventBus.Bus) StoreOption {
	return func(s *CommerceStore) {
		s.bus = bus
	}
}

// WithClock overrides the time source (wishlist timestamps, event times).
func WithClock(now func() time.Time) StoreOption {
	return func(s *CommerceStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCommerceStore creates a store over cat with default criteria.
func NewCommerceStore(cat *catalog.Catalog, opts ...StoreOption) *CommerceStore {
	s := &CommerceStore{
		catalog: cat,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.criteria = s.DefaultCriteria()
	return s
}

// Catalog returns the catalog the store browses.
func (s *CommerceStore) Catalog() *catalog.Catalog {
	return s.catalog
}

// Version increases by one on every mutation that changes state.
func (s *CommerceStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// BestSellers returns the catalog's best sellers. Criteria do not apply.
func (s *CommerceStore) BestSellers() []models.Product {
	return s.catalog.BestSellers()
}

// NewArrivals returns the catalog's new products. Criteria do not apply.
func (s *CommerceStore) NewArrivals() []models.Product {
	return s.catalog.NewArrivals()
}

// Close waits for asynchronous event subscribers to finish.
func (s *CommerceStore) Close() {
	if s.bus != nil {
		s.bus.WaitAsync()
	}
}

// changed records a state change. Callers must hold s.mu for writing and pass
// the returned event to publish after unlocking.
func (s *CommerceStore) changed(topic, action, productID string, quantity int) StoreEvent {
	s.version++
	return newStoreEvent(topic, action, s.version, productID, quantity, s.now())
}

func (s *CommerceStore) publish(evt StoreEvent) {
	s.logger.Debug("store changed",
		zap.String("topic", evt.Topic),
		zap.String("action", evt.Action),
		zap.String("product_id", evt.ProductID),
		zap.Int("quantity", evt.Quantity),
		zap.Uint64("version", evt.Version),
	)
	if s.bus != nil {
		s.bus.Publish(evt.Topic, evt)
	}
}
