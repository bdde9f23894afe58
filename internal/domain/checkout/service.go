// internal/domain/checkout/service.go
package checkout

import (
	"github.com/sirupsen/logrus"
	"github.com/your-org/retail-store/internal/config"
	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/order"
	"github.com/your-org/retail-store/internal/domain/store"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

// Service handles checkout business logic
type Service struct {
	manager *store.Manager
	feeRate float64
	logger  *logrus.Entry
}

// NewService creates a new checkout service
func NewService(manager *store.Manager, cfg *config.Config, logger *logrus.Logger) *Service {
	feeRate := order.DefaultFeeRate
	if cfg != nil {
		feeRate = cfg.Checkout.FeeRate
	}
	entry := logrus.NewEntry(logrus.StandardLogger())
	if logger != nil {
		entry = logger.WithField("component", "checkout")
	}
	return &Service{
		manager: manager,
		feeRate: feeRate,
		logger:  entry,
	}
}

// Checkout builds an order from the given cart lines, charges the processing
// fee on top of the order total, marks the order paid, and records it into
// the manager (which also appends it to the customer's history). The caller
// clears the cart afterwards.
func (s *Service) Checkout(customer *order.Customer, items []cart.Item, paymentMethod string, initialStatus order.Status) (*order.Order, error) {
	if customer == nil {
		return nil, errs.Validation("customer is required")
	}
	if len(items) == 0 {
		return nil, errs.InvalidOperation("cart is empty")
	}

	o := order.New(customer, items, initialStatus)
	total := o.TotalAmount()

	payment := order.NewPayment(total, paymentMethod)
	payment.Amount += order.Fee(total, s.feeRate)

	// MarkPaid completes the payment and forces the order status to Paid,
	// whatever status the caller chose at creation.
	o.MarkPaid(payment)
	s.manager.RecordOrder(o)

	s.logger.WithFields(logrus.Fields{
		"order_number": o.Number,
		"customer":     customer.FullName,
		"method":       paymentMethod,
		"total":        total,
		"charged":      payment.Amount,
	}).Info("Order checked out")

	return o, nil
}
