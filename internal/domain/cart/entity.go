// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

// Item is one purchasable line: a product and a positive quantity.
type Item struct {
	Product  product.Product
	Quantity int
}

// Subtotal is the discounted unit price times the quantity.
func (i Item) Subtotal() float64 {
	return i.Product.DiscountPrice() * float64(i.Quantity)
}

// ShoppingCart is an ordered sequence of items, unique by product equality.
// Created once per session and cleared on checkout.
type ShoppingCart struct {
	items []Item
}

// New creates an empty cart.
func New() *ShoppingCart {
	return &ShoppingCart{}
}

// AddItem adds quantity units of a product. If an equal product (by the
// price/name ordering) is already in the cart, its line quantity grows
// instead of a new line being appended.
func (c *ShoppingCart) AddItem(p product.Product, quantity int) error {
	if quantity <= 0 {
		return errs.Validation("quantity must be positive")
	}
	for idx := range c.items {
		if c.items[idx].Product.Equal(p) {
			c.items[idx].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: quantity})
	return nil
}

// RemoveItem drops every line holding a product equal to p.
func (c *ShoppingCart) RemoveItem(p product.Product) {
	kept := c.items[:0]
	for _, item := range c.items {
		if !item.Product.Equal(p) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart.
func (c *ShoppingCart) Clear() {
	c.items = nil
}

// Total sums the line subtotals.
func (c *ShoppingCart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a copy of the cart lines.
func (c *ShoppingCart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *ShoppingCart) IsEmpty() bool {
	return len(c.items) == 0
}
