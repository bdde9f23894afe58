// internal/domain/product/variants.go
package product

import "strings"

// Electronics is a product with warranty and connectivity extras.
type Electronics struct {
	base
	WarrantyYears int
	HasWiFi       bool
}

// NewElectronics creates a validated Electronics product. An empty category
// defaults to "Electronics".
func NewElectronics(name, category string, price float64, stock int, manufacturer string, warrantyYears int, hasWiFi bool) (*Electronics, error) {
	b, err := newBase(name, category, price, stock, manufacturer, string(KindElectronics))
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		warrantyYears = 0
	}
	return &Electronics{base: b, WarrantyYears: warrantyYears, HasWiFi: hasWiFi}, nil
}

func (e *Electronics) Kind() Kind { return KindElectronics }

func (e *Electronics) specificDiscountRate() float64 {
	if e.WarrantyYears >= 2 {
		return 0.05
	}
	return 0.03
}

// DiscountPrice applies the warranty-driven rate first, then the Wi-Fi
// loyalty multiplier as a separate second step.
func (e *Electronics) DiscountPrice() float64 {
	price := e.discounted(e.specificDiscountRate())
	if e.HasWiFi {
		price *= 0.97
	}
	return price
}

// SupportMessage describes the support tier bundled with the product.
func (e *Electronics) SupportMessage() string {
	if e.HasWiFi {
		return "Premium support included"
	}
	return "Standard support"
}

func (e *Electronics) Record() Record {
	rec := Record{Type: string(KindElectronics)}
	e.fillRecord(&rec)
	warranty := e.WarrantyYears
	wifi := e.HasWiFi
	rec.WarrantyYears = &warranty
	rec.HasWiFi = &wifi
	return rec
}

// Clothing is a product with size and material extras.
type Clothing struct {
	base
	Size     string
	Material string
}

// NewClothing creates a validated Clothing product. An empty category
// defaults to "Clothing".
func NewClothing(name, category string, price float64, stock int, manufacturer, size, material string) (*Clothing, error) {
	b, err := newBase(name, category, price, stock, manufacturer, string(KindClothing))
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = "M"
	}
	if material == "" {
		material = "Cotton"
	}
	return &Clothing{base: b, Size: size, Material: material}, nil
}

func (c *Clothing) Kind() Kind { return KindClothing }

// Wool gets the deeper rate; the match accepts the English and Ukrainian
// spellings, case-insensitively.
func (c *Clothing) specificDiscountRate() float64 {
	switch strings.ToLower(strings.TrimSpace(c.Material)) {
	case "wool", "вовна":
		return 0.04
	}
	return 0.02
}

func (c *Clothing) DiscountPrice() float64 {
	return c.discounted(c.specificDiscountRate())
}

func (c *Clothing) Record() Record {
	rec := Record{Type: string(KindClothing)}
	c.fillRecord(&rec)
	size := c.Size
	material := c.Material
	rec.Size = &size
	rec.Material = &material
	return rec
}

// Furniture is a product with weight and assembly extras.
type Furniture struct {
	base
	Weight    float64
	Assembled bool
}

// NewFurniture creates a validated Furniture product. An empty category
// defaults to "Furniture".
func NewFurniture(name, category string, price float64, stock int, manufacturer string, weight float64, assembled bool) (*Furniture, error) {
	b, err := newBase(name, category, price, stock, manufacturer, string(KindFurniture))
	if err != nil {
		return nil, err
	}
	if weight < 0 {
		weight = 0
	}
	return &Furniture{base: b, Weight: weight, Assembled: assembled}, nil
}

func (f *Furniture) Kind() Kind { return KindFurniture }

func (f *Furniture) specificDiscountRate() float64 {
	if f.Weight > 50 {
		return 0.06
	}
	return 0.03
}

func (f *Furniture) DiscountPrice() float64 {
	return f.discounted(f.specificDiscountRate())
}

// ShippingCost returns the flat delivery charge; pre-assembled pieces cost
// more to move.
func (f *Furniture) ShippingCost() float64 {
	if f.Assembled {
		return 15.0
	}
	return 5.0
}

func (f *Furniture) Record() Record {
	rec := Record{Type: string(KindFurniture)}
	f.fillRecord(&rec)
	weight := f.Weight
	assembled := f.Assembled
	rec.Weight = &weight
	rec.Assembled = &assembled
	return rec
}
