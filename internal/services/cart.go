package services

import (
	"slices"

	"etalase/internal/models"

	"github.com/shopspring/decimal"
)

// AddToCart adds one unit of p, creating its line on first add.
func (s *CommerceStore) AddToCart(p models.Product) {
	s.mu.Lock()
	qty := 1
	if i := s.lineIndex(p.ID); i >= 0 {
		s.cart[i].Quantity++
		qty = s.cart[i].Quantity
	} else {
		s.cart = append(s.cart, models.CartLine{Product: p.Clone(), Quantity: 1})
	}
	evt := s.changed(TopicCart, "add", p.ID, qty)
	s.mu.Unlock()

	s.publish(evt)
}

// RemoveFromCart deletes the line for productID. Unknown IDs are ignored.
func (s *CommerceStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	evt, ok := s.removeLine(productID)
	s.mu.Unlock()

	if ok {
		s.publish(evt)
	}
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Without a line for productID nothing happens; the
// result reports whether such a line existed.
func (s *CommerceStore) SetQuantity(productID string, qty int) bool {
	s.mu.Lock()
	i := s.lineIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	if s.cart[i].Quantity == qty {
		s.mu.Unlock()
		return true
	}

	var evt StoreEvent
	if qty <= 0 {
		evt, _ = s.removeLine(productID)
	} else {
		s.cart[i].Quantity = qty
		evt = s.changed(TopicCart, "set_quantity", productID, qty)
	}
	s.mu.Unlock()

	s.publish(evt)
	return true
}

// ClearCart removes every line.
func (s *CommerceStore) ClearCart() {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return
	}
	s.cart = nil
	evt := s.changed(TopicCart, "clear", "", 0)
	s.mu.Unlock()

	s.publish(evt)
}

// CartLines returns a snapshot of the cart in insertion order.
func (s *CommerceStore) CartLines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCart()
}

// CartSnapshot returns the lines, unit count and total read under one lock,
// so the three always describe the same cart state.
func (s *CommerceStore) CartSnapshot() ([]models.CartLine, int, decimal.Decimal) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCart(), s.cartCount(), s.cartTotal()
}

// CartLine returns the line for productID.
func (s *CommerceStore) CartLine(productID string) (models.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.lineIndex(productID); i >= 0 {
		line := s.cart[i]
		line.Product = line.Product.Clone()
		return line, true
	}
	return models.CartLine{}, false
}

// InCart reports whether productID has a cart line.
func (s *CommerceStore) InCart(productID string) bool {
	_, ok := s.CartLine(productID)
	return ok
}

// CartCount returns the total number of units, not the number of lines.
func (s *CommerceStore) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCount()
}

// CartTotal returns the sum of price * quantity over all lines.
func (s *CommerceStore) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotal()
}

func (s *CommerceStore) cartCount() int {
	var n int
	for _, l := range s.cart {
		n += l.Quantity
	}
	return n
}

func (s *CommerceStore) cartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.cart {
		total = total.Add(l.Subtotal())
	}
	return total
}

// cloneCart must be called with s.mu held.
func (s *CommerceStore) cloneCart() []models.CartLine {
	out := make([]models.CartLine, len(s.cart))
	for i, l := range s.cart {
		out[i] = models.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}

func (s *CommerceStore) lineIndex(productID string) int {
	return slices.IndexFunc(s.cart, func(l models.CartLine) bool { return l.Product.ID == productID })
}

// removeLine must be called with s.mu held for writing.
func (s *CommerceStore) removeLine(productID string) (StoreEvent, bool) {
	i := s.lineIndex(productID)
	if i < 0 {
		return StoreEvent{}, false
	}
	s.cart = slices.Delete(s.cart, i, i+1)
	return s.changed(TopicCart, "remove", productID, 0), true
}
