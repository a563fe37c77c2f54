package main

import (
	"fmt"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/pkg/cartcache"
	"github.com/RoyceAzure/lab/storefront/pkg/client"
	"github.com/RoyceAzure/lab/storefront/pkg/session"
	"github.com/spf13/cobra"
)

var (
	sessionStore *session.Store
	storeClient  *client.Client
	cartCache    *cartcache.Cache
)

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Terminal client for the storefront API",
	Long: `storectl talks to the storefront REST API: browse products, manage
your cart, check out, and review orders. Admin accounts additionally get
product management, order management and the dashboard.

The logged-in identity is kept in a session file and attached to every
request; without a login, requests go out as the guest user.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := session.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve session path: %w", err)
		}
		sessionStore, err = session.NewStore(path)
		if err != nil {
			return err
		}

		storeClient = client.New(config.GetConfig().APIBaseURL, sessionStore)
		cartCache = cartcache.New(storeClient)
		return nil
	},
}

// notify prints the transient outcome line of a command.
func notify(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
