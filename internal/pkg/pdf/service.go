// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/retail-store/internal/config"
	"github.com/your-org/retail-store/internal/domain/store"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateSalesReport renders a filtered sales report as a PDF document.
func (s *Service) GenerateSalesReport(report store.FilteredSalesReport, start, end time.Time) (*bytes.Buffer, error) {
	data := reportData{
		Title:        fmt.Sprintf("Sales report %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		GeneratedAt:  time.Now().Format("January 2, 2006"),
		OrdersCount:  report.OrdersCount,
		TotalRevenue: fmt.Sprintf("%.2f", report.TotalRevenue),
		Categories:   categoryRows(report),
		Products:     productRows(report),
		Company: companyInfo{
			Name:    s.config.Report.CompanyName,
			Address: s.config.Report.CompanyAddress,
			Email:   s.config.Report.CompanyEmail,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data reportData) (string, error) {
	tmpl := template.Must(template.New("report").Parse(reportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

type reportData struct {
	Title        string
	GeneratedAt  string
	OrdersCount  int
	TotalRevenue string
	Categories   []summaryRow
	Products     []summaryRow
	Company      companyInfo
}

type summaryRow struct {
	Name     string
	Amount   string
	Quantity int
}

type companyInfo struct {
	Name    string
	Address string
	Email   string
}

func categoryRows(report store.FilteredSalesReport) []summaryRow {
	rows := make([]summaryRow, 0, len(report.ByCategory))
	for category, amount := range report.ByCategory {
		rows = append(rows, summaryRow{
			Name:     category,
			Amount:   fmt.Sprintf("%.2f", amount),
			Quantity: report.QtyByCategory[category],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

func productRows(report store.FilteredSalesReport) []summaryRow {
	rows := make([]summaryRow, 0, len(report.ByProduct))
	for name, amount := range report.ByProduct {
		rows = append(rows, summaryRow{
			Name:     name,
			Amount:   fmt.Sprintf("%.2f", amount),
			Quantity: report.QtyByProduct[name],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// Report HTML template
const reportTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #222; }
        h1 { font-size: 20px; margin-bottom: 0; }
        .meta { color: #777; font-size: 12px; margin-bottom: 24px; }
        .company { margin-bottom: 16px; font-size: 12px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
        th, td { border: 1px solid #ddd; padding: 6px 10px; font-size: 12px; text-align: left; }
        th { background: #f4f4f4; }
        td.num { text-align: right; }
        .total { font-size: 14px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="company">
        <strong>{{.Company.Name}}</strong><br>
        {{.Company.Address}}<br>
        {{.Company.Email}}
    </div>
    <h1>{{.Title}}</h1>
    <div class="meta">Generated {{.GeneratedAt}} ({{.OrdersCount}} orders)</div>

    <h2>Category summary</h2>
    <table>
        <tr><th>Category</th><th>Amount</th><th>Quantity</th></tr>
        {{range .Categories}}
        <tr><td>{{.Name}}</td><td class="num">{{.Amount}}</td><td class="num">{{.Quantity}}</td></tr>
        {{end}}
    </table>

    <h2>Product summary</h2>
    <table>
        <tr><th>Product</th><th>Amount</th><th>Quantity</th></tr>
        {{range .Products}}
        <tr><td>{{.Name}}</td><td class="num">{{.Amount}}</td><td class="num">{{.Quantity}}</td></tr>
        {{end}}
    </table>

    <div class="total">Total revenue: {{.TotalRevenue}}</div>
</body>
</html>
`
