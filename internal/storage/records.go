// internal/storage/records.go
package storage

import (
	"time"

	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/order"
	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/domain/store"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

// The record types below are the one logical schema every codec honors. The
// JSON and binary codecs serialize it in full; the XML codec encodes orders
// shallowly (see xml.go).

// CustomerRecord carries buyer details. Order records are the recursion cut:
// a customer record never nests the orders that reference it.
type CustomerRecord struct {
	FullName string `json:"full_name"`
	Contact  string `json:"contact"`
}

// PaymentRecord carries one payment transaction.
type PaymentRecord struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
}

// ItemRecord is one order line.
type ItemRecord struct {
	Product  product.Record `json:"product"`
	Quantity int            `json:"quantity"`
}

// OrderRecord carries one order with its customer, item snapshot, and
// optional payment.
type OrderRecord struct {
	Number    string         `json:"number"`
	Customer  CustomerRecord `json:"customer"`
	Items     []ItemRecord   `json:"items"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	Payment   *PaymentRecord `json:"payment"`
}

// StoreRecord is the full persistable store state.
type StoreRecord struct {
	Products []product.Record `json:"products"`
	Orders   []OrderRecord    `json:"orders"`
}

// timeLayout preserves sub-second precision so round trips are lossless.
const timeLayout = time.RFC3339Nano

// Snapshot converts a manager's state into the record schema.
func Snapshot(m *store.Manager) StoreRecord {
	rec := StoreRecord{
		Products: make([]product.Record, 0, len(m.Products())),
		Orders:   make([]OrderRecord, 0, len(m.Orders())),
	}
	for _, p := range m.Products() {
		rec.Products = append(rec.Products, p.Record())
	}
	for _, o := range m.Orders() {
		rec.Orders = append(rec.Orders, snapshotOrder(o))
	}
	return rec
}

func snapshotOrder(o *order.Order) OrderRecord {
	rec := OrderRecord{
		Number: o.Number,
		Customer: CustomerRecord{
			FullName: o.Customer.FullName,
			Contact:  o.Customer.Contact,
		},
		Items:     make([]ItemRecord, 0, len(o.Items)),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(timeLayout),
	}
	for _, item := range o.Items {
		rec.Items = append(rec.Items, ItemRecord{
			Product:  item.Product.Record(),
			Quantity: item.Quantity,
		})
	}
	if o.Payment != nil {
		rec.Payment = &PaymentRecord{
			Reference: o.Payment.Reference,
			Amount:    o.Payment.Amount,
			Method:    o.Payment.Method,
			Status:    string(o.Payment.Status),
			Date:      o.Payment.Date.Format(timeLayout),
		}
	}
	return rec
}

// Restore builds a fresh manager from a record. On any failure the error is
// returned and no manager is produced, so a caller's existing state stays
// untouched.
func Restore(rec StoreRecord) (*store.Manager, error) {
	m := store.NewManager()
	for _, pr := range rec.Products {
		p, err := product.FromRecord(pr)
		if err != nil {
			return nil, err
		}
		m.AddProduct(p)
	}
	for _, or := range rec.Orders {
		o, err := restoreOrder(or)
		if err != nil {
			return nil, err
		}
		m.RecordOrder(o)
	}
	return m, nil
}

func restoreOrder(rec OrderRecord) (*order.Order, error) {
	createdAt, err := time.Parse(timeLayout, rec.CreatedAt)
	if err != nil {
		return nil, errs.IO("parse order timestamp", err)
	}

	items := make([]cart.Item, 0, len(rec.Items))
	for _, ir := range rec.Items {
		p, err := product.FromRecord(ir.Product)
		if err != nil {
			return nil, err
		}
		items = append(items, cart.Item{Product: p, Quantity: ir.Quantity})
	}

	o := &order.Order{
		Number:    rec.Number,
		Customer:  order.NewCustomer(rec.Customer.FullName, rec.Customer.Contact),
		Items:     items,
		Status:    order.Status(rec.Status),
		CreatedAt: createdAt,
	}

	if rec.Payment != nil {
		date, err := time.Parse(timeLayout, rec.Payment.Date)
		if err != nil {
			return nil, errs.IO("parse payment timestamp", err)
		}
		o.Payment = &order.Payment{
			Reference: rec.Payment.Reference,
			Amount:    rec.Payment.Amount,
			Method:    rec.Payment.Method,
			Status:    order.PaymentStatus(rec.Payment.Status),
			Date:      date,
		}
	}
	return o, nil
}
