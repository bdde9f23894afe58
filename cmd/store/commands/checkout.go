package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/your-org/retail-store/internal/domain/cart"
	"github.com/your-org/retail-store/internal/domain/checkout"
	"github.com/your-org/retail-store/internal/domain/order"
)

// checkout <index> <qty>: purchase qty units of the product at the given
// catalog index and record a paid order.
func checkoutCmd() *cobra.Command {
	var (
		customerName string
		contact      string
		method       string
		status       string
	)

	cmd := &cobra.Command{
		Use:   "checkout <product-index> <quantity>",
		Short: "Purchase a product and record a paid order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, format, name, err := loadManager()
			if err != nil {
				return err
			}

			var index, qty int
			if _, err := fmt.Sscanf(args[0], "%d", &index); err != nil {
				return fmt.Errorf("invalid product index %q", args[0])
			}
			if _, err := fmt.Sscanf(args[1], "%d", &qty); err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			p, err := m.ProductAt(index)
			if err != nil {
				return err
			}
			if err := p.Purchase(qty); err != nil {
				return err
			}

			basket := cart.New()
			if err := basket.AddItem(p, qty); err != nil {
				return err
			}

			if customerName == "" {
				customerName = labels.T("guest")
			}
			customer := order.NewCustomer(customerName, contact)

			svc := checkout.NewService(m, cfg, log)
			o, err := svc.Checkout(customer, basket.Items(), method, order.Status(status))
			if err != nil {
				return err
			}
			basket.Clear()

			if _, err := stg.Save(m, format, name); err != nil {
				return err
			}
			fmt.Printf("%s %s: %s %.2f\n", labels.T("order_created"), o.Number, labels.T("total"), o.Payment.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerName, "customer", "", "customer full name")
	cmd.Flags().StringVar(&contact, "contact", "", "customer contact info")
	cmd.Flags().StringVar(&method, "method", "Card", "payment method: Cash or Card")
	cmd.Flags().StringVar(&status, "status", string(order.StatusNew), "initial order status: New, Paid or Shipped")
	return cmd
}
