// Package cart holds shopping carts in memory only; carts are never
// written to the remote store. A line is identified by the triple
// (product id, size, color).
package cart

import (
	"sync"

	"github.com/afriblend/afriblend-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID bson.ObjectID, size, color string) int {
	for i, item := range c.items {
		if item.Id == productID && item.SelectedSize == size && item.SelectedColor == color {
			return i
		}
	}
	return -1
}

// Add puts one unit of the product variant in the cart. Adding an
// existing triple increments its quantity instead of duplicating the
// line. No stock-availability check is made here; over-ordering is
// only reconciled by the fulfillment-time decrement.
func (c *Cart) Add(product models.Product, size, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.find(product.Id, size, color); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, models.CartItem{
		Product:       product,
		Quantity:      1,
		SelectedSize:  size,
		SelectedColor: color,
	})
}

// Remove deletes the exact keyed line if present.
func (c *Cart) Remove(productID bson.ObjectID, size, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.find(productID, size, color); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// SetQuantity fixes the line's quantity; zero or below removes it.
func (c *Cart) SetQuantity(productID bson.ObjectID, size, color string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(productID, size, color)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = quantity
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum over lines of price times quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum over lines of quantity.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
