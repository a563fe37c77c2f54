package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/storefront/pkg/cartcache"
	"github.com/RoyceAzure/lab/storefront/pkg/client"
	"github.com/spf13/cobra"
)

func renderCart(cart *client.Cart) {
	if cart == nil || len(cart.Items) == 0 {
		notify("Cart is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tPRICE\tQTY\tSUBTOTAL\tIN STOCK")
	for _, item := range cart.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%d\n",
			item.ProductID, item.ProductName, item.ProductPrice.StringFixed(2),
			item.Quantity, item.Subtotal.StringFixed(2), item.AvailableStock)
	}
	w.Flush()
	notify("%d item(s), total %s", cart.ItemCount, cart.TotalAmount.StringFixed(2))
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and manage the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cartCache.Reload(cmd.Context()); err != nil {
			return err
		}
		renderCart(cartCache.Snapshot())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id] [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		quantity := 1
		if len(args) == 2 {
			quantity, err = strconv.Atoi(args[1])
			if err != nil || quantity <= 0 {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
		}

		product, err := storeClient.GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}

		if err := cartCache.Add(cmd.Context(), *product, quantity); err != nil {
			if errors.Is(err, cartcache.ErrOutOfStock) {
				notify("%s is out of stock", product.Name)
				return nil
			}
			return err
		}

		notify("Added %d x %s", quantity, product.Name)
		renderCart(cartCache.Snapshot())
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [product-id] [quantity]",
	Short: "Set a line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil || quantity < 0 {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		if err := cartCache.UpdateQuantity(cmd.Context(), id, quantity); err != nil {
			return err
		}
		notify("Cart updated")
		renderCart(cartCache.Snapshot())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := cartCache.Remove(cmd.Context(), id); err != nil {
			return err
		}
		notify("Item removed")
		renderCart(cartCache.Snapshot())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cartCache.Clear(cmd.Context()); err != nil {
			return err
		}
		notify("Cart cleared")
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartUpdateCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
