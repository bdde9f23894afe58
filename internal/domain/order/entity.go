// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/product"
)

// Status represents the order status
type Status string

const (
	StatusNew       Status = "New"
	StatusPaid      Status = "Paid"
	StatusShipped   Status = "Shipped"
	StatusCancelled Status = "Cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// DefaultFeeRate is the flat processing fee charged on checkout.
const DefaultFeeRate = 0.02

// Fee returns the processing charge on an amount at the given rate. Every
// fee computation goes through here.
func Fee(value, rate float64) float64 {
	return value * rate
}

// FeeForAmount returns the processing fee for a plain amount at the default
// rate.
func FeeForAmount(value float64) float64 {
	return Fee(value, DefaultFeeRate)
}

// FeeForProduct returns the processing fee for a single unit of a product,
// charged on the list price.
func FeeForProduct(p product.Product) float64 {
	return Fee(p.Price(), DefaultFeeRate)
}

// Payment represents one payment transaction attached to an order.
type Payment struct {
	Reference string
	Amount    float64
	Method    string
	Status    PaymentStatus
	Date      time.Time
}

// NewPayment creates a pending payment dated now.
func NewPayment(amount float64, method string) *Payment {
	return &Payment{
		Reference: fmt.Sprintf("PAY-%s", uuid.NewString()[:8]),
		Amount:    amount,
		Method:    method,
		Status:    PaymentStatusPending,
		Date:      time.Now(),
	}
}

// Process marks the payment completed.
func (p *Payment) Process() {
	p.Status = PaymentStatusCompleted
}

// Refund marks the payment failed.
func (p *Payment) Refund() {
	p.Status = PaymentStatusFailed
}

// Customer holds buyer details and the orders they participated in. Customers
// are not deduplicated across orders; each order owns its own value.
type Customer struct {
	FullName string
	Contact  string

	history []*Order
}

// NewCustomer creates a customer with an empty history.
func NewCustomer(fullName, contact string) *Customer {
	return &Customer{FullName: fullName, Contact: contact}
}

// AddOrder appends an order to the customer's history.
func (c *Customer) AddOrder(o *Order) {
	c.history = append(c.history, o)
}

// History returns a copy of the customer's order history.
func (c *Customer) History() []*Order {
	out := make([]*Order, len(c.history))
	copy(out, c.history)
	return out
}

// TotalSpent sums the totals of every order in the history.
func (c *Customer) TotalSpent() float64 {
	var total float64
	for _, o := range c.history {
		total += o.TotalAmount()
	}
	return total
}

// Order is a persisted transaction: a customer, a snapshot of cart lines,
// a status, and an optional payment. Items are copied at creation so later
// catalog edits never change historical totals.
type Order struct {
	Number    string
	Customer  *Customer
	Items     []cart.Item
	Status    Status
	CreatedAt time.Time
	Payment   *Payment
}

// New creates an order from cart lines, snapshotting them.
func New(customer *Customer, items []cart.Item, status Status) *Order {
	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)
	return &Order{
		Number:    GenerateOrderNumber(),
		Customer:  customer,
		Items:     snapshot,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

// GenerateOrderNumber generates a unique order number.
func GenerateOrderNumber() string {
	// Format: ORD-YYYYMMDD-xxxxxxxx
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

// TotalAmount sums the line subtotals.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// MarkPaid completes the payment, attaches it, and forces the order status
// to Paid regardless of the status chosen at creation.
func (o *Order) MarkPaid(p *Payment) {
	p.Process()
	o.Payment = p
	o.Status = StatusPaid
}
