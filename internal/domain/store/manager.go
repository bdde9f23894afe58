// internal/domain/store/manager.go
package store

import (
	"github.com/your-org/retail-store/internal/domain/order"
	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

// Manager owns the authoritative product catalog (index-addressed) and the
// append-only order ledger.
type Manager struct {
	products []product.Product
	orders   []*order.Order
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddProduct appends a product to the catalog.
func (m *Manager) AddProduct(p product.Product) {
	m.products = append(m.products, p)
}

// UpdateProduct replaces the product at index.
func (m *Manager) UpdateProduct(index int, p product.Product) error {
	if index < 0 || index >= len(m.products) {
		return errs.IndexOutOfRange(index, len(m.products))
	}
	m.products[index] = p
	return nil
}

// DeleteProduct removes the product at index.
func (m *Manager) DeleteProduct(index int) error {
	if index < 0 || index >= len(m.products) {
		return errs.IndexOutOfRange(index, len(m.products))
	}
	m.products = append(m.products[:index], m.products[index+1:]...)
	return nil
}

// ProductAt returns the product at index.
func (m *Manager) ProductAt(index int) (product.Product, error) {
	if index < 0 || index >= len(m.products) {
		return nil, errs.IndexOutOfRange(index, len(m.products))
	}
	return m.products[index], nil
}

// Products returns a copy of the catalog.
func (m *Manager) Products() []product.Product {
	out := make([]product.Product, len(m.products))
	copy(out, m.products)
	return out
}

// RecordOrder appends an order to the ledger and to its customer's history.
func (m *Manager) RecordOrder(o *order.Order) {
	m.orders = append(m.orders, o)
	o.Customer.AddOrder(o)
}

// Orders returns a copy of the ledger.
func (m *Manager) Orders() []*order.Order {
	out := make([]*order.Order, len(m.orders))
	copy(out, m.orders)
	return out
}
