// internal/domain/product/entity.go
package product

import (
	"strings"

	"github.com/your-org/retail-store/internal/pkg/errs"
)

// Kind identifies one of the closed set of product variants.
type Kind string

const (
	KindElectronics Kind = "Electronics"
	KindClothing    Kind = "Clothing"
	KindFurniture   Kind = "Furniture"
)

// baseDiscount is the discount rate shared by every variant.
const baseDiscount = 0.02

// Product is the pricing/validation contract implemented by the three
// variants. The unexported method keeps the set closed: only types in this
// package can satisfy it.
type Product interface {
	Kind() Kind
	Name() string
	SetName(value string) error
	Category() string
	SetCategory(value string)
	Price() float64
	SetPrice(value float64) error
	Stock() int
	SetStock(value int) error
	Manufacturer() string
	SetManufacturer(value string)

	// Restock increases stock; Purchase decrements it, failing when the
	// requested amount exceeds what is available.
	Restock(amount int) error
	Purchase(amount int) error

	// DiscountPrice applies the base discount plus the variant's own rate.
	DiscountPrice() float64
	PriceWithTax(rate float64) float64

	Compare(other Product) int
	Equal(other Product) bool

	// Record returns the persistable representation with the type
	// discriminator set.
	Record() Record

	specificDiscountRate() float64
}

// base carries the fields common to every variant. Validated fields are
// unexported; mutation goes through setters that reject bad values and leave
// the previous value in place.
type base struct {
	name         string
	category     string
	price        float64
	stock        int
	manufacturer string
}

func newBase(name, category string, price float64, stock int, manufacturer, defaultCategory string) (base, error) {
	b := base{category: defaultCategory, manufacturer: manufacturer}
	if err := b.SetName(name); err != nil {
		return base{}, err
	}
	if category != "" {
		b.category = category
	}
	if err := b.SetPrice(price); err != nil {
		return base{}, err
	}
	if err := b.SetStock(stock); err != nil {
		return base{}, err
	}
	return b, nil
}

func (b *base) Name() string { return b.name }

func (b *base) SetName(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Validation("name is required")
	}
	b.name = value
	return nil
}

func (b *base) Category() string { return b.category }

// SetCategory keeps the current category when given an empty value.
func (b *base) SetCategory(value string) {
	if value != "" {
		b.category = value
	}
}

func (b *base) Price() float64 { return b.price }

func (b *base) SetPrice(value float64) error {
	if value < 0 {
		return errs.Validation("price cannot be negative")
	}
	b.price = value
	return nil
}

func (b *base) Stock() int { return b.stock }

func (b *base) SetStock(value int) error {
	if value < 0 {
		return errs.Validation("stock cannot be negative")
	}
	b.stock = value
	return nil
}

func (b *base) Manufacturer() string { return b.manufacturer }

func (b *base) SetManufacturer(value string) { b.manufacturer = value }

// Restock increases stock by amount.
func (b *base) Restock(amount int) error {
	if amount <= 0 {
		return errs.InvalidOperation("restock amount must be positive")
	}
	b.stock += amount
	return nil
}

// Purchase decrements stock by amount.
func (b *base) Purchase(amount int) error {
	if amount <= 0 {
		return errs.InvalidOperation("purchase amount must be positive")
	}
	if amount > b.stock {
		return errs.InvalidOperation("not enough stock: requested %d, have %d", amount, b.stock)
	}
	b.stock -= amount
	return nil
}

// PriceWithTax returns the gross price at the given tax rate.
func (b *base) PriceWithTax(rate float64) float64 {
	return b.price * (1 + rate)
}

// discounted applies the shared base discount plus the variant rate.
func (b *base) discounted(specificRate float64) float64 {
	return b.price * (1 - (baseDiscount + specificRate))
}

// Compare orders products by price, then name, ascending.
func (b *base) Compare(other Product) int {
	if other == nil {
		return 1
	}
	switch {
	case b.price < other.Price():
		return -1
	case b.price > other.Price():
		return 1
	}
	return strings.Compare(b.name, other.Name())
}

// Equal reports structural equality under the same ordering: two products
// with equal price and name are equal regardless of other fields. The cart
// relies on this to merge quantities.
func (b *base) Equal(other Product) bool {
	return other != nil && b.Compare(other) == 0
}

func (b *base) fillRecord(rec *Record) {
	rec.Name = b.name
	rec.Category = b.category
	rec.Price = b.price
	rec.Stock = b.stock
	rec.Manufacturer = b.manufacturer
}
