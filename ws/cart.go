package ws

import (
	"sync"

	"github.com/kim-el/basic-pos/entity"
)

// DefaultTaxRate ภาษี 8% ของหน้าร้าน
const DefaultTaxRate = 0.08

// Cart builds the cashier's order before it gets published. The relay
// only ever sees whole snapshots; add/remove/quantity logic stays on the
// writer side.
type Cart struct {
	mu    sync.Mutex
	items []entity.CartItem
}

func NewCart() *Cart {
	return &Cart{items: []entity.CartItem{}}
}

// Add puts qty more of the product on the order, merging into an
// existing line for the same product.
func (c *Cart) Add(p entity.Product, qty int) {
	if qty <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, entity.CartItem{Product: p, Quantity: qty})
}

// SetQuantity pins a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(productID uint, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if qty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = qty
		}
		return
	}
}

func (c *Cart) Remove(productID uint) {
	c.SetQuantity(productID, 0)
}

// Clear empties the order (sale completed / cancelled).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []entity.CartItem{}
}

// Items returns the snapshot to publish: the full current order.
func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotCopy(c.items)
}

// Totals returns subtotal, tax and total; line totals are always derived
// as price × quantity, never stored.
func (c *Cart) Totals() (subtotal, tax, total float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		subtotal += it.Product.Price * float64(it.Quantity)
	}
	tax = subtotal * DefaultTaxRate
	total = subtotal + tax
	return subtotal, tax, total
}
