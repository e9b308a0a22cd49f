// Package cart holds the per-session shopping cart: an ordered set of
// lines, at most one per product, with totals recomputed from the lines
// on every read. Carts live in memory only and are never persisted.
package cart

import (
	"sync"

	"github.com/Naren-18/Saree-Commerce/models"
)

// Line is one product's entry in a cart. It snapshots the product's
// display fields at add time; later catalog edits do not reach into
// carts that already hold the product.
type Line struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// Cart is one session's pending selections. Lines keep insertion order
// and every line's quantity stays ≥ 1; dropping to zero removes the
// line entirely.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the product in the cart: an existing line is
// incremented, otherwise a new line is appended with quantity 1.
func (c *Cart) AddItem(p models.Product) Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}
	line := Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity overwrites a line's quantity; zero or less removes the
// line. Reports whether a line for the product existed.
func (c *Cart) SetQuantity(productID, quantity int) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return Line{ProductID: productID}, true
		}
		c.lines[i].Quantity = quantity
		return c.lines[i], true
	}
	return Line{}, false
}

// RemoveItem drops the line for the product; no-op when absent.
func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is Σ(price × quantity) over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is Σ(quantity) over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
