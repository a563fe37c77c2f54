package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/storefront/pkg/client"
	"github.com/spf13/cobra"
)

func renderOrders(orders []client.Order) {
	if len(orders) == 0 {
		notify("No orders")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tSTATUS\tTOTAL\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			o.ID, o.UserID, o.Status, o.TotalAmount.StringFixed(2),
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func renderOrder(o *client.Order) {
	notify("Order #%d  %s  total %s  placed %s", o.ID, o.Status,
		o.TotalAmount.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range o.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			item.ProductID, item.ProductName, item.Price.StringFixed(2),
			item.Quantity, item.Subtotal.StringFixed(2))
	}
	w.Flush()
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into an order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := storeClient.Checkout(cmd.Context())
		if err != nil {
			return fmt.Errorf("checkout failed: %w", err)
		}

		// the server cleared the cart; pick the empty snapshot up
		if err := cartCache.Reload(cmd.Context()); err != nil {
			return err
		}

		notify("Order placed successfully")
		renderOrder(order)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your order history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := storeClient.OrderHistory(cmd.Context())
		if err != nil {
			return err
		}
		renderOrders(orders)
		return nil
	},
}

var orderCmd = &cobra.Command{
	Use:   "order [id]",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		order, err := storeClient.GetOrder(cmd.Context(), id)
		if err != nil {
			return err
		}
		renderOrder(order)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd, ordersCmd, orderCmd)
}
