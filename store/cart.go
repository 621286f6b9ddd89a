package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Aayushsah6969/ShoeStore/models"
)

// CartItem is one cart line. UnitPrice is the product's effective price
// captured at add time (snapshot price): later catalog price changes do not
// reprice lines already in the cart.
type CartItem struct {
	ID            string         `json:"id"`
	Product       models.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	SelectedSize  string         `json:"selected_size"`
	SelectedColor string         `json:"selected_color"`
	UnitPrice     float64        `json:"unit_price"`
}

// Cart keeps at most one line per (product, size, color) tuple.
type Cart struct {
	mu     sync.Mutex
	items  []CartItem
	bucket *Bucket
}

// NewCart restores any persisted cart from the bucket. A nil bucket gives
// an in-memory-only cart.
func NewCart(bucket *Bucket) *Cart {
	c := &Cart{bucket: bucket}
	if bucket != nil {
		var items []CartItem
		if ok, err := bucket.Get("cart", &items); err == nil && ok {
			c.items = items
		}
	}
	return c
}

// Add merges into the existing line for the same (product, size, color) by
// summing quantities, or appends a new line with a fresh id.
func (c *Cart) Add(product models.Product, quantity int, size, color string) CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		item := &c.items[i]
		if item.Product.ID == product.ID && item.SelectedSize == size && item.SelectedColor == color {
			item.Quantity += quantity
			c.persist()
			return *item
		}
	}

	line := CartItem{
		ID:            uuid.NewString(),
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
		UnitPrice:     product.EffectivePrice(),
	}
	c.items = append(c.items, line)
	c.persist()
	return line
}

// Remove deletes the line with the given id; unknown ids are a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

// UpdateQuantity sets a line's quantity. Zero or less is equivalent to
// Remove, so totals and counts can never go negative.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

// Clear empties the cart (also called on logout).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of unit price times quantity over all lines, recomputed
// on demand.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Count sums quantities across lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// persist is best-effort; callers hold the lock.
func (c *Cart) persist() {
	if c.bucket == nil {
		return
	}
	_ = c.bucket.Set("cart", c.items)
}
