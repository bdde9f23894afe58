package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/domain/store"
)

// seed: write a small default catalog to the store file.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a default catalog and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(formatName)
			if err != nil {
				return err
			}

			m := store.NewManager()
			for _, p := range defaultProducts() {
				m.AddProduct(p)
			}

			path, err := stg.Save(m, format, storeFile(format))
			if err != nil {
				return err
			}
			fmt.Println(fmt.Sprintf(labels.T("data_saved"), path))
			return nil
		},
	}
}

func defaultProducts() []product.Product {
	laptop, _ := product.NewElectronics("Laptop", "", 1200.0, 5, "TechCorp", 2, true)
	jacket, _ := product.NewClothing("Jacket", "", 150.0, 20, "Warm&Co", "L", "Wool")
	desk, _ := product.NewFurniture("Desk", "", 300.0, 10, "Furni", 55.0, false)
	return []product.Product{laptop, jacket, desk}
}
