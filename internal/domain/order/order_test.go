// internal/domain/order/order_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/product"
)

func laptopItem(t *testing.T, qty int) cart.Item {
	t.Helper()
	p, err := product.NewElectronics("Laptop", "", 1200, 5, "TechCorp", 2, true)
	require.NoError(t, err)
	return cart.Item{Product: p, Quantity: qty}
}

func TestFeeFunctions(t *testing.T) {
	assert.InDelta(t, 5.0, Fee(100, 0.05), 1e-9)
	assert.InDelta(t, 2.0, FeeForAmount(100), 1e-9)
	assert.InDelta(t, Fee(100, DefaultFeeRate), FeeForAmount(100), 1e-9)

	p, err := product.NewFurniture("Desk", "", 300, 1, "", 10, false)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, FeeForProduct(p), 1e-9)
	assert.InDelta(t, Fee(p.Price(), DefaultFeeRate), FeeForProduct(p), 1e-9)
}

func TestNewPaymentStartsPending(t *testing.T) {
	p := NewPayment(50, "Cash")
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.NotEmpty(t, p.Reference)
	assert.WithinDuration(t, time.Now(), p.Date, time.Second)

	p.Process()
	assert.Equal(t, PaymentStatusCompleted, p.Status)

	p.Refund()
	assert.Equal(t, PaymentStatusFailed, p.Status)
}

func TestOrderSnapshotsItems(t *testing.T) {
	items := []cart.Item{laptopItem(t, 2)}
	o := New(NewCustomer("Ada", "ada@example.com"), items, StatusNew)

	// Mutating the source slice must not change the order.
	items[0].Quantity = 9
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.NotEmpty(t, o.Number)
	assert.WithinDuration(t, time.Now(), o.CreatedAt, time.Second)
}

func TestTotalAmount(t *testing.T) {
	o := New(NewCustomer("Ada", ""), []cart.Item{laptopItem(t, 1)}, StatusNew)
	assert.InDelta(t, 1200*(1-0.07)*0.97, o.TotalAmount(), 1e-9)
	assert.InDelta(t, 1082.52, o.TotalAmount(), 1e-9)
}

func TestMarkPaidForcesStatus(t *testing.T) {
	for _, initial := range []Status{StatusNew, StatusShipped, StatusCancelled} {
		o := New(NewCustomer("Ada", ""), []cart.Item{laptopItem(t, 1)}, initial)
		payment := NewPayment(o.TotalAmount(), "Card")
		o.MarkPaid(payment)

		assert.Equal(t, StatusPaid, o.Status, "initial status %s", initial)
		assert.Equal(t, PaymentStatusCompleted, o.Payment.Status)
		assert.Same(t, payment, o.Payment)
	}
}

func TestCustomerHistory(t *testing.T) {
	c := NewCustomer("Ada", "ada@example.com")
	first := New(c, []cart.Item{laptopItem(t, 1)}, StatusNew)
	second := New(c, []cart.Item{laptopItem(t, 2)}, StatusNew)
	c.AddOrder(first)
	c.AddOrder(second)

	require.Len(t, c.History(), 2)
	assert.InDelta(t, first.TotalAmount()+second.TotalAmount(), c.TotalSpent(), 1e-9)
}
