// internal/pkg/i18n/i18n.go
package i18n

// Translator resolves label keys for one locale. Tables are fixed at compile
// time and never mutated at runtime; unknown keys fall through to the key
// itself so missing labels stay visible.
type Translator struct {
	labels   map[string]string
	fallback map[string]string
}

var tables = map[string]map[string]string{
	"en": {
		"app_title":        "Online Store",
		"total":            "Total",
		"orders_label":     "Orders",
		"revenue_label":    "Revenue",
		"amount":           "Amount",
		"quantity_label":   "Quantity",
		"category":         "Category",
		"name":             "Name",
		"price":            "Price",
		"stock":            "Stock",
		"manufacturer":     "Manufacturer",
		"discounted":       "Discounted",
		"category_summary": "Category summary",
		"product_summary":  "Product summary",
		"order_created":    "Order created",
		"data_saved":       "Data saved to %s",
		"data_loaded":      "Data loaded from %s",
		"cart_empty":       "Add items to cart first.",
		"guest":            "Guest",
	},
	"uk": {
		"app_title":        "Інтернет-магазин",
		"total":            "Разом",
		"orders_label":     "Замовлення",
		"revenue_label":    "Дохід",
		"amount":           "Сума",
		"quantity_label":   "Кількість",
		"category":         "Категорія",
		"name":             "Назва",
		"price":            "Ціна",
		"stock":            "Залишок",
		"manufacturer":     "Виробник",
		"discounted":       "Зі знижкою",
		"category_summary": "Підсумок за категоріями",
		"product_summary":  "Підсумок за товарами",
		"order_created":    "Замовлення створено",
		"data_saved":       "Дані збережено у %s",
		"data_loaded":      "Дані завантажено з %s",
		"cart_empty":       "Спочатку додайте товари в кошик.",
		"guest":            "Гість",
	},
}

// ForLocale returns the translator for a locale code, falling back to
// English for unknown locales.
func ForLocale(locale string) *Translator {
	labels, ok := tables[locale]
	if !ok {
		labels = tables["en"]
	}
	return &Translator{labels: labels, fallback: tables["en"]}
}

// T resolves a label key.
func (t *Translator) T(key string) string {
	if v, ok := t.labels[key]; ok {
		return v
	}
	if v, ok := t.fallback[key]; ok {
		return v
	}
	return key
}
