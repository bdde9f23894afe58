// internal/domain/store/report.go
package store

import "time"

// SalesReport aggregates the ledger: order count, total revenue, and revenue
// per product category.
type SalesReport struct {
	OrdersCount  int                `json:"orders_count"`
	TotalRevenue float64            `json:"total_revenue"`
	ByCategory   map[string]float64 `json:"by_category"`
}

// FilteredSalesReport extends SalesReport with per-product revenue and
// quantity breakdowns for a restricted order set.
type FilteredSalesReport struct {
	SalesReport
	ByProduct     map[string]float64 `json:"by_product_amount"`
	QtyByProduct  map[string]int     `json:"by_product_qty"`
	QtyByCategory map[string]int     `json:"by_category_qty"`
}

// SalesReport aggregates every order in the ledger.
func (m *Manager) SalesReport() SalesReport {
	report := SalesReport{ByCategory: make(map[string]float64)}
	for _, o := range m.orders {
		report.OrdersCount++
		report.TotalRevenue += o.TotalAmount()
		for _, item := range o.Items {
			report.ByCategory[item.Product.Category()] += item.Subtotal()
		}
	}
	return report
}

// SalesReportFiltered restricts the aggregation to orders created within
// [start, end] (inclusive) and, when categories is non-empty, to line items
// whose product category is in the set. It is a pure projection over the
// ledger.
func (m *Manager) SalesReportFiltered(start, end time.Time, categories []string) FilteredSalesReport {
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	report := FilteredSalesReport{
		SalesReport:   SalesReport{ByCategory: make(map[string]float64)},
		ByProduct:     make(map[string]float64),
		QtyByProduct:  make(map[string]int),
		QtyByCategory: make(map[string]int),
	}

	for _, o := range m.orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		matched := false
		for _, item := range o.Items {
			category := item.Product.Category()
			if len(wanted) > 0 && !wanted[category] {
				continue
			}
			matched = true
			subtotal := item.Subtotal()
			report.ByCategory[category] += subtotal
			report.QtyByCategory[category] += item.Quantity
			report.ByProduct[item.Product.Name()] += subtotal
			report.QtyByProduct[item.Product.Name()] += item.Quantity
			report.TotalRevenue += subtotal
		}
		if matched {
			report.OrdersCount++
		}
	}
	return report
}
