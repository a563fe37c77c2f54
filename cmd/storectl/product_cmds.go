package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/storefront/pkg/client"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func renderProducts(products []client.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Category)
	}
	w.Flush()
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		contains, _ := cmd.Flags().GetString("contains")

		products, err := storeClient.ListProducts(cmd.Context(), client.ListProductsOptions{
			Category: category,
			Search:   search,
		})
		if err != nil {
			return err
		}

		// --contains filters the loaded set locally, no extra request
		if contains != "" {
			needle := strings.ToLower(contains)
			filtered := products[:0]
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), needle) ||
					strings.Contains(strings.ToLower(p.Description), needle) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		renderProducts(products)
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Inspect and manage products",
}

var productGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := storeClient.GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		notify("#%d %s  %s  stock %d  [%s]", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Category)
		if p.Description != "" {
			notify("%s", p.Description)
		}
		return nil
	},
}

var productCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product (admin)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		priceRaw, _ := cmd.Flags().GetString("price")
		description, _ := cmd.Flags().GetString("description")
		stock, _ := cmd.Flags().GetInt("stock")
		category, _ := cmd.Flags().GetString("category")
		image, _ := cmd.Flags().GetString("image")

		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			return fmt.Errorf("invalid price %q", priceRaw)
		}

		p, err := storeClient.CreateProduct(cmd.Context(), client.ProductInput{
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			Category:    category,
			ImageURL:    image,
		})
		if err != nil {
			return fmt.Errorf("create failed: %w", err)
		}
		notify("Product #%d created", p.ID)
		return nil
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update product fields (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var upd client.ProductUpdate
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			upd.Name = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			upd.Description = &v
		}
		if cmd.Flags().Changed("price") {
			raw, _ := cmd.Flags().GetString("price")
			price, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid price %q", raw)
			}
			upd.Price = &price
		}
		if cmd.Flags().Changed("stock") {
			v, _ := cmd.Flags().GetInt("stock")
			upd.Stock = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			upd.Category = &v
		}
		if cmd.Flags().Changed("image") {
			v, _ := cmd.Flags().GetString("image")
			upd.ImageURL = &v
		}

		p, err := storeClient.UpdateProduct(cmd.Context(), id, upd)
		if err != nil {
			return fmt.Errorf("update failed: %w", err)
		}
		notify("Product #%d updated", p.ID)
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := storeClient.DeleteProduct(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
		notify("Product #%d deleted", id)
		return nil
	},
}

func init() {
	productsCmd.Flags().String("category", "", "server-side category filter")
	productsCmd.Flags().String("search", "", "server-side name/description search")
	productsCmd.Flags().String("contains", "", "local filter within the loaded set")

	for _, c := range []*cobra.Command{productCreateCmd, productUpdateCmd} {
		c.Flags().String("name", "", "product name")
		c.Flags().String("price", "", "product price")
		c.Flags().String("description", "", "product description")
		c.Flags().Int("stock", 0, "stock on hand")
		c.Flags().String("category", "", "product category")
		c.Flags().String("image", "", "image URL")
	}
	productCreateCmd.MarkFlagRequired("name")
	productCreateCmd.MarkFlagRequired("price")

	productCmd.AddCommand(productGetCmd, productCreateCmd, productUpdateCmd, productDeleteCmd)
	rootCmd.AddCommand(productsCmd, productCmd)
}
