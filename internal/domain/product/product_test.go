// internal/domain/product/product_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

func TestNewElectronicsDefaultsCategory(t *testing.T) {
	p, err := NewElectronics("Laptop", "", 1200, 5, "TechCorp", 2, true)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", p.Category())
	assert.Equal(t, KindElectronics, p.Kind())
}

func TestConstructorValidation(t *testing.T) {
	_, err := NewElectronics("", "", 10, 1, "", 1, false)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewClothing("Shirt", "", -1, 1, "", "M", "Cotton")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewFurniture("Desk", "", 10, -1, "", 10, false)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestSettersRejectInvalidAndKeepOldValue(t *testing.T) {
	p, err := NewFurniture("Desk", "", 300, 10, "Furni", 55, false)
	require.NoError(t, err)

	require.ErrorIs(t, p.SetName(""), errs.ErrValidation)
	assert.Equal(t, "Desk", p.Name())

	require.ErrorIs(t, p.SetPrice(-5), errs.ErrValidation)
	assert.Equal(t, 300.0, p.Price())

	require.ErrorIs(t, p.SetStock(-1), errs.ErrValidation)
	assert.Equal(t, 10, p.Stock())

	require.NoError(t, p.SetPrice(350))
	assert.Equal(t, 350.0, p.Price())
}

func TestDiscountPriceBounds(t *testing.T) {
	products := []Product{
		mustElectronics(t, "A", 100, 1, 0, false),
		mustElectronics(t, "B", 100, 1, 3, true),
		mustClothing(t, "C", 100, 1, "Wool"),
		mustClothing(t, "D", 100, 1, "Cotton"),
		mustFurniture(t, "E", 100, 1, 80),
		mustFurniture(t, "F", 100, 1, 10),
	}
	for _, p := range products {
		dp := p.DiscountPrice()
		assert.LessOrEqual(t, dp, p.Price(), "product %s", p.Name())
		assert.GreaterOrEqual(t, dp, 0.0, "product %s", p.Name())
	}
}

func TestElectronicsTwoStageDiscount(t *testing.T) {
	// Warranty rate first, Wi-Fi multiplier second.
	p := mustElectronics(t, "Laptop", 1200, 5, 2, true)
	assert.InDelta(t, 1200*(1-0.07)*0.97, p.DiscountPrice(), 1e-9)
	assert.InDelta(t, 1082.52, p.DiscountPrice(), 1e-9)

	noWifi := mustElectronics(t, "Laptop", 1200, 5, 2, false)
	assert.InDelta(t, 1200*(1-0.07), noWifi.DiscountPrice(), 1e-9)

	shortWarranty := mustElectronics(t, "Laptop", 1200, 5, 1, false)
	assert.InDelta(t, 1200*(1-0.05), shortWarranty.DiscountPrice(), 1e-9)
}

func TestClothingWoolDiscount(t *testing.T) {
	cases := map[string]float64{
		"Wool":   0.04,
		"WOOL":   0.04,
		" вовна": 0.04,
		"Вовна":  0.04,
		"Cotton": 0.02,
		"":       0.02,
	}
	for material, rate := range cases {
		p := mustClothing(t, "Jacket", 150, 1, material)
		if material == "" {
			// Empty material defaults to Cotton.
			rate = 0.02
		}
		assert.InDelta(t, 150*(1-(0.02+rate)), p.DiscountPrice(), 1e-9, "material %q", material)
	}
}

func TestFurnitureWeightDiscount(t *testing.T) {
	heavy := mustFurniture(t, "Wardrobe", 500, 1, 80)
	assert.InDelta(t, 500*(1-0.08), heavy.DiscountPrice(), 1e-9)

	light := mustFurniture(t, "Stool", 40, 1, 5)
	assert.InDelta(t, 40*(1-0.05), light.DiscountPrice(), 1e-9)

	boundary := mustFurniture(t, "Table", 100, 1, 50)
	assert.InDelta(t, 100*(1-0.05), boundary.DiscountPrice(), 1e-9)
}

func TestPurchaseAndRestock(t *testing.T) {
	p := mustElectronics(t, "Laptop", 1200, 5, 2, true)

	require.ErrorIs(t, p.Purchase(6), errs.ErrInvalidOperation)
	assert.Equal(t, 5, p.Stock())

	require.ErrorIs(t, p.Purchase(0), errs.ErrInvalidOperation)
	require.ErrorIs(t, p.Restock(0), errs.ErrInvalidOperation)
	require.ErrorIs(t, p.Restock(-3), errs.ErrInvalidOperation)

	require.NoError(t, p.Purchase(5))
	assert.Equal(t, 0, p.Stock())

	require.NoError(t, p.Restock(2))
	assert.Equal(t, 2, p.Stock())
}

func TestCompareAndEqual(t *testing.T) {
	cheap := mustFurniture(t, "Desk", 100, 1, 10)
	pricey := mustFurniture(t, "Desk", 200, 1, 10)
	assert.Negative(t, cheap.Compare(pricey))
	assert.Positive(t, pricey.Compare(cheap))

	// Same price orders by name.
	alpha := mustFurniture(t, "Armchair", 100, 1, 10)
	assert.Negative(t, alpha.Compare(cheap))

	// Equality ignores everything but price and name, even across variants.
	sameAsDesk := mustClothing(t, "Desk", 100, 3, "Wool")
	assert.True(t, cheap.Equal(sameAsDesk))
	assert.False(t, cheap.Equal(pricey))
	assert.False(t, cheap.Equal(nil))
}

func TestPriceWithTax(t *testing.T) {
	p := mustFurniture(t, "Desk", 100, 1, 10)
	assert.InDelta(t, 120.0, p.PriceWithTax(0.2), 1e-9)
}

func TestVariantExtras(t *testing.T) {
	premium := mustElectronics(t, "Router", 80, 1, 1, true)
	assert.Equal(t, "Premium support included", premium.SupportMessage())
	standard := mustElectronics(t, "Router", 80, 1, 1, false)
	assert.Equal(t, "Standard support", standard.SupportMessage())

	assembled, err := NewFurniture("Sofa", "", 900, 1, "", 70, true)
	require.NoError(t, err)
	assert.Equal(t, 15.0, assembled.ShippingCost())
	flat := mustFurniture(t, "Shelf", 60, 1, 12)
	assert.Equal(t, 5.0, flat.ShippingCost())
}

func TestRecordRoundTrip(t *testing.T) {
	original := mustElectronics(t, "Laptop", 1200, 5, 2, true)
	rec := original.Record()
	assert.Equal(t, "Electronics", rec.Type)
	require.NotNil(t, rec.WarrantyYears)
	assert.Equal(t, 2, *rec.WarrantyYears)

	restored, err := FromRecord(rec)
	require.NoError(t, err)
	e, ok := restored.(*Electronics)
	require.True(t, ok)
	assert.Equal(t, original.Name(), e.Name())
	assert.Equal(t, original.WarrantyYears, e.WarrantyYears)
	assert.Equal(t, original.HasWiFi, e.HasWiFi)
	assert.Equal(t, original.Stock(), e.Stock())
}

func TestFromRecordClothingFieldPresence(t *testing.T) {
	empty := ""
	rec := Record{Type: string(KindClothing), Name: "Shirt", Price: 40, Stock: 2,
		Size: &empty, Material: &empty}

	decoded, err := FromRecord(rec)
	require.NoError(t, err)
	c, ok := decoded.(*Clothing)
	require.True(t, ok)

	// Present-but-empty values survive the decode verbatim.
	assert.Empty(t, c.Size)
	assert.Empty(t, c.Material)

	// Absent keys fall back to the constructor defaults.
	decoded, err = FromRecord(Record{Type: string(KindClothing), Name: "Shirt", Price: 40, Stock: 2})
	require.NoError(t, err)
	c = decoded.(*Clothing)
	assert.Equal(t, "M", c.Size)
	assert.Equal(t, "Cotton", c.Material)
}

func TestFromRecordUnknownVariant(t *testing.T) {
	_, err := FromRecord(Record{Type: "Appliance", Name: "Toaster", Price: 25})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
	assert.Contains(t, err.Error(), "Appliance")
}

// helpers

func mustElectronics(t *testing.T, name string, price float64, stock, warranty int, wifi bool) *Electronics {
	t.Helper()
	p, err := NewElectronics(name, "", price, stock, "", warranty, wifi)
	require.NoError(t, err)
	return p
}

func mustClothing(t *testing.T, name string, price float64, stock int, material string) *Clothing {
	t.Helper()
	p, err := NewClothing(name, "", price, stock, "", "M", material)
	require.NoError(t, err)
	return p
}

func mustFurniture(t *testing.T, name string, price float64, stock int, weight float64) *Furniture {
	t.Helper()
	p, err := NewFurniture(name, "", price, stock, "", weight, false)
	require.NoError(t, err)
	return p
}
