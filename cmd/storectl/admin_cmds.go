package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office commands (admin role required)",
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		orders, err := storeClient.AdminOrders(cmd.Context(), status)
		if err != nil {
			return err
		}
		renderOrders(orders)
		return nil
	},
}

var adminStatusCmd = &cobra.Command{
	Use:   "status [order-id] [status]",
	Short: "Update an order's status",
	Long:  "Valid statuses: pending, confirmed, shipped, delivered, cancelled.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		order, err := storeClient.UpdateOrderStatus(cmd.Context(), id, args[1])
		if err != nil {
			return fmt.Errorf("status update failed: %w", err)
		}
		notify("Order #%d is now %s", order.ID, order.Status)
		return nil
	},
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show store metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := storeClient.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		notify("Products: %d (%d low on stock)", d.TotalProducts, d.LowStockProducts)
		notify("Orders:   %d, revenue %s", d.TotalOrders, d.TotalRevenue.StringFixed(2))
		for status, count := range d.OrderStatusCounts {
			notify("  %-10s %d", status, count)
		}
		if len(d.RecentOrders) > 0 {
			notify("Recent orders:")
			renderOrders(d.RecentOrders)
		}
		if len(d.LowStockItems) > 0 {
			notify("Low stock:")
			renderProducts(d.LowStockItems)
		}
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := storeClient.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		for _, u := range users {
			notify("%d\t%s\t%s", u.ID, u.Username, u.Role)
		}
		return nil
	},
}

func init() {
	adminOrdersCmd.Flags().String("status", "", "filter by order status")
	adminCmd.AddCommand(adminOrdersCmd, adminStatusCmd, adminDashboardCmd, adminUsersCmd)
	rootCmd.AddCommand(adminCmd)
}
