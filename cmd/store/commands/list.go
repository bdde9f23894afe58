package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// list: print the catalog from the store file.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, _, err := loadManager()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "#\t%s\t%s\t%s\t%s\t%s\t%s\n",
				labels.T("name"), labels.T("category"), labels.T("price"),
				labels.T("discounted"), labels.T("stock"), labels.T("manufacturer"))
			for i, p := range m.Products() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%d\t%s\n",
					i, p.Name(), p.Category(), p.Price(), p.DiscountPrice(), p.Stock(), p.Manufacturer())
			}
			return w.Flush()
		},
	}
}
