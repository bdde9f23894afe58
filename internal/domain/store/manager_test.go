// internal/domain/store/manager_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/order"
	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

func seededManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	laptop, err := product.NewElectronics("Laptop", "", 1200, 5, "TechCorp", 2, true)
	require.NoError(t, err)
	jacket, err := product.NewClothing("Jacket", "", 150, 20, "Warm&Co", "L", "Wool")
	require.NoError(t, err)
	m.AddProduct(laptop)
	m.AddProduct(jacket)
	return m
}

func recordOrderOf(t *testing.T, m *Manager, items ...cart.Item) *order.Order {
	t.Helper()
	o := order.New(order.NewCustomer("Ada", "ada@example.com"), items, order.StatusNew)
	m.RecordOrder(o)
	return o
}

func item(t *testing.T, p product.Product, qty int) cart.Item {
	t.Helper()
	return cart.Item{Product: p, Quantity: qty}
}

func TestCatalogIndexOperations(t *testing.T) {
	m := seededManager(t)

	replacement, err := product.NewFurniture("Desk", "", 300, 10, "Furni", 55, false)
	require.NoError(t, err)

	require.NoError(t, m.UpdateProduct(0, replacement))
	got, err := m.ProductAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Desk", got.Name())

	require.ErrorIs(t, m.UpdateProduct(5, replacement), errs.ErrIndexOutOfRange)
	require.ErrorIs(t, m.UpdateProduct(-1, replacement), errs.ErrIndexOutOfRange)

	require.NoError(t, m.DeleteProduct(0))
	assert.Len(t, m.Products(), 1)
	require.ErrorIs(t, m.DeleteProduct(1), errs.ErrIndexOutOfRange)

	_, err = m.ProductAt(7)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestRecordOrderAppendsToCustomerHistory(t *testing.T) {
	m := seededManager(t)
	laptop, err := m.ProductAt(0)
	require.NoError(t, err)

	o := recordOrderOf(t, m, item(t, laptop, 1))
	require.Len(t, m.Orders(), 1)
	require.Len(t, o.Customer.History(), 1)
}

func TestSalesReport(t *testing.T) {
	m := seededManager(t)
	laptop, _ := m.ProductAt(0)
	jacket, _ := m.ProductAt(1)

	recordOrderOf(t, m, item(t, laptop, 1), item(t, jacket, 2))
	recordOrderOf(t, m, item(t, jacket, 1))

	report := m.SalesReport()
	assert.Equal(t, 2, report.OrdersCount)

	wantJacket := jacket.DiscountPrice() * 3
	wantLaptop := laptop.DiscountPrice()
	assert.InDelta(t, wantLaptop, report.ByCategory["Electronics"], 1e-9)
	assert.InDelta(t, wantJacket, report.ByCategory["Clothing"], 1e-9)
	assert.InDelta(t, wantLaptop+wantJacket, report.TotalRevenue, 1e-9)
}

func TestSalesReportFilteredByDate(t *testing.T) {
	m := seededManager(t)
	laptop, _ := m.ProductAt(0)

	old := recordOrderOf(t, m, item(t, laptop, 1))
	old.CreatedAt = time.Now().AddDate(0, -2, 0)
	recordOrderOf(t, m, item(t, laptop, 1))

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().Add(time.Hour)
	report := m.SalesReportFiltered(start, end, nil)

	assert.Equal(t, 1, report.OrdersCount)
	assert.InDelta(t, laptop.DiscountPrice(), report.TotalRevenue, 1e-9)
	assert.Equal(t, 1, report.QtyByProduct["Laptop"])
}

func TestSalesReportFilteredByCategory(t *testing.T) {
	m := seededManager(t)
	laptop, _ := m.ProductAt(0)
	jacket, _ := m.ProductAt(1)

	recordOrderOf(t, m, item(t, laptop, 1), item(t, jacket, 2))

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	report := m.SalesReportFiltered(start, end, []string{"Clothing"})

	assert.Equal(t, 1, report.OrdersCount)
	assert.NotContains(t, report.ByCategory, "Electronics")
	assert.InDelta(t, jacket.DiscountPrice()*2, report.ByCategory["Clothing"], 1e-9)
	assert.Equal(t, 2, report.QtyByCategory["Clothing"])
	assert.Equal(t, 2, report.QtyByProduct["Jacket"])
	assert.InDelta(t, jacket.DiscountPrice()*2, report.ByProduct["Jacket"], 1e-9)

	// An empty category set means no category filter.
	unfiltered := m.SalesReportFiltered(start, end, nil)
	assert.Contains(t, unfiltered.ByCategory, "Electronics")
}

func TestReportsDoNotMutateLedger(t *testing.T) {
	m := seededManager(t)
	laptop, _ := m.ProductAt(0)
	recordOrderOf(t, m, item(t, laptop, 2))

	before := m.Orders()
	_ = m.SalesReport()
	_ = m.SalesReportFiltered(time.Now().Add(-time.Hour), time.Now(), []string{"Electronics"})
	after := m.Orders()

	require.Equal(t, len(before), len(after))
	assert.Equal(t, before[0].TotalAmount(), after[0].TotalAmount())
}
