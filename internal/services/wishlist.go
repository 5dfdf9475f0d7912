package services

import (
	"slices"

	"etalase/internal/models"
)

// AddToWishlist saves p. Adding a product that is already saved does nothing.
//
// There is no toggle: callers check IsInWishlist and call add or remove.
func (s *CommerceStore) AddToWishlist(p models.Product) {
	s.mu.Lock()
	if s.wishlistIndex(p.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.wishlist = append(s.wishlist, models.WishlistEntry{Product: p.Clone(), AddedAt: s.now()})
	evt := s.changed(TopicWishlist, "add", p.ID, 0)
	s.mu.Unlock()

	s.publish(evt)
}

// RemoveFromWishlist deletes the entry for productID if present.
func (s *CommerceStore) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	i := s.wishlistIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.wishlist = slices.Delete(s.wishlist, i, i+1)
	evt := s.changed(TopicWishlist, "remove", productID, 0)
	s.mu.Unlock()

	s.publish(evt)
}

// IsInWishlist reports whether productID is saved.
func (s *CommerceStore) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlistIndex(productID) >= 0
}

// Wishlist returns a snapshot of the saved entries in insertion order.
func (s *CommerceStore) Wishlist() []models.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WishlistEntry, len(s.wishlist))
	for i, e := range s.wishlist {
		out[i] = models.WishlistEntry{Product: e.Product.Clone(), AddedAt: e.AddedAt}
	}
	return out
}

// WishlistCount returns the number of saved products.
func (s *CommerceStore) WishlistCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wishlist)
}

func (s *CommerceStore) wishlistIndex(productID string) int {
	return slices.IndexFunc(s.wishlist, func(e models.WishlistEntry) bool { return e.Product.ID == productID })
}
