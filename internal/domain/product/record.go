// internal/domain/product/record.go
package product

import "github.com/your-org/retail-store/internal/pkg/errs"

// Record is the persistable representation of a product. The Type field
// discriminates the variant; variant-specific fields are pointers so that a
// record only carries the keys its variant owns.
type Record struct {
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Manufacturer string  `json:"manufacturer"`

	WarrantyYears *int     `json:"warranty_years,omitempty"`
	HasWiFi       *bool    `json:"has_wifi,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Material      *string  `json:"material,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Assembled     *bool    `json:"assembled,omitempty"`
}

// decoders maps a type discriminator to its variant constructor.
var decoders = map[Kind]func(Record) (Product, error){
	KindElectronics: decodeElectronics,
	KindClothing:    decodeClothing,
	KindFurniture:   decodeFurniture,
}

// FromRecord rebuilds a product from its record, dispatching on the type
// discriminator. An unregistered discriminator fails naming the value.
func FromRecord(rec Record) (Product, error) {
	decode, ok := decoders[Kind(rec.Type)]
	if !ok {
		return nil, errs.UnknownVariant(rec.Type)
	}
	return decode(rec)
}

func decodeElectronics(rec Record) (Product, error) {
	warranty := 1
	if rec.WarrantyYears != nil {
		warranty = *rec.WarrantyYears
	}
	wifi := false
	if rec.HasWiFi != nil {
		wifi = *rec.HasWiFi
	}
	return NewElectronics(rec.Name, rec.Category, rec.Price, rec.Stock, rec.Manufacturer, warranty, wifi)
}

func decodeClothing(rec Record) (Product, error) {
	c, err := NewClothing(rec.Name, rec.Category, rec.Price, rec.Stock, rec.Manufacturer, "", "")
	if err != nil {
		return nil, err
	}
	// A key that is present but empty stays empty; the M/Cotton defaults
	// apply only when the key is absent.
	if rec.Size != nil {
		c.Size = *rec.Size
	}
	if rec.Material != nil {
		c.Material = *rec.Material
	}
	return c, nil
}

func decodeFurniture(rec Record) (Product, error) {
	weight := 0.0
	if rec.Weight != nil {
		weight = *rec.Weight
	}
	assembled := false
	if rec.Assembled != nil {
		assembled = *rec.Assembled
	}
	return NewFurniture(rec.Name, rec.Category, rec.Price, rec.Stock, rec.Manufacturer, weight, assembled)
}
