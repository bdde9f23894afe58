package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/your-org/retail-store/internal/pkg/pdf"
)

// report: print a filtered sales report, optionally rendering it to PDF.
func reportCmd() *cobra.Command {
	var (
		startStr   string
		endStr     string
		categories []string
		pdfOut     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate sales by category and product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, _, err := loadManager()
			if err != nil {
				return err
			}

			end := time.Now()
			start := end.Add(-cfg.Report.DefaultWindow)
			if startStr != "" {
				if start, err = time.Parse("2006-01-02", startStr); err != nil {
					return fmt.Errorf("invalid --start date: %w", err)
				}
			}
			if endStr != "" {
				if end, err = time.Parse("2006-01-02", endStr); err != nil {
					return fmt.Errorf("invalid --end date: %w", err)
				}
				// Make the end date inclusive.
				end = end.Add(24*time.Hour - time.Nanosecond)
			}

			report := m.SalesReportFiltered(start, end, categories)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\n", labels.T("category_summary"))
			fmt.Fprintf(w, "%s\t%s\t%s\n", labels.T("category"), labels.T("amount"), labels.T("quantity_label"))
			for _, category := range sortedKeys(report.ByCategory) {
				fmt.Fprintf(w, "%s\t%.2f\t%d\n", category, report.ByCategory[category], report.QtyByCategory[category])
			}
			fmt.Fprintf(w, "\n%s\n", labels.T("product_summary"))
			fmt.Fprintf(w, "%s\t%s\t%s\n", labels.T("name"), labels.T("amount"), labels.T("quantity_label"))
			for _, name := range sortedKeys(report.ByProduct) {
				fmt.Fprintf(w, "%s\t%.2f\t%d\n", name, report.ByProduct[name], report.QtyByProduct[name])
			}
			fmt.Fprintf(w, "\n%s: %d\t%s: %.2f\n", labels.T("orders_label"), report.OrdersCount, labels.T("revenue_label"), report.TotalRevenue)
			if err := w.Flush(); err != nil {
				return err
			}

			if pdfOut != "" {
				buf, err := pdf.NewService(cfg).GenerateSalesReport(report, start, end)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfOut, buf.Bytes(), 0o644); err != nil {
					return err
				}
				fmt.Println(fmt.Sprintf(labels.T("data_saved"), pdfOut))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&endStr, "end", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "restrict to these categories (repeatable)")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "also render the report to this PDF file")
	return cmd
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
