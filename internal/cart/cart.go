// Package cart holds the buyer's cart. It lives only on the client and is
// never sent to the server. A Cart is not safe for concurrent use.
package cart

import "sunshare/internal/models"

type Item struct {
	models.WireProperty
	Qty int `json:"qty"`
}

// Subtotal is unit price times quantity; a missing price counts as 0.
func (i Item) Subtotal() float64 {
	if i.Price == nil {
		return 0
	}
	qty := i.Qty
	if qty <= 0 {
		qty = 1
	}
	return *i.Price * float64(qty)
}

type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges amount panels of p into the cart. An amount below 1 adds one.
func (c *Cart) Add(p models.WireProperty, amount int) {
	if amount < 1 {
		amount = 1
	}
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Qty += amount
			return
		}
	}
	c.items = append(c.items, Item{WireProperty: p, Qty: amount})
}

// Remove drops the entry for id whatever its quantity.
func (c *Cart) Remove(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total is recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Summary is what checkout shows the buyer.
type Summary struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// Checkout builds the display summary. It neither calls the server nor
// changes the cart.
func (c *Cart) Checkout() Summary {
	return Summary{Items: c.Items(), Total: c.Total()}
}
