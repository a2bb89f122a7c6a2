package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagShopCaptain string

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List the consumables for sale",
	Long: `Lists the products of the shop. A bought product is used by the
captain's next run.

Examples:
  lander shop
  lander shop buy Shield --captain neil`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <product>",
	Short: "Buy a product for the next run",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

func init() {
	shopBuyCmd.Flags().StringVar(&flagShopCaptain, "captain", "", "Captain paying for the product (default: login name)")
	shopCmd.AddCommand(shopBuyCmd)
}

func runShop(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	products, err := store.Products()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing products: %v\n", err)
		return
	}

	fmt.Printf("  %-10s  %-10s  %s\n", "Product", "Price", "Description")
	fmt.Printf("  %-10s  %-10s  %s\n", "-------", "-----", "-----------")
	for _, p := range products {
		price := fmt.Sprintf("%d %s", p.Price, p.Currency)
		fmt.Printf("  %-10s  %-10s  %s\n", p.Name, price, p.Description)
	}
	fmt.Println()
	fmt.Println("Run 'lander shop buy <product>' to buy one.")
}

func runShopBuy(_ *cobra.Command, args []string) {
	captain := flagShopCaptain
	if captain == "" {
		captain = defaultCaptain()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.EnsureAccount(captain); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	coins, err := store.Buy(captain, args[0])
	switch {
	case errors.Is(err, storage.ErrInsufficientFunds):
		fmt.Fprintf(os.Stderr, "Not enough coins for %s (balance %d)\n", args[0], coins)
		return
	case errors.Is(err, storage.ErrUnknownProduct):
		fmt.Fprintf(os.Stderr, "Unknown product %q. Run 'lander shop' to see the list.\n", args[0])
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	logger.Info("product bought", "captain", captain, "product", args[0], "coins", coins)
	fmt.Printf("Captain %s bought %s. Balance: %d coins\n", captain, args[0], coins)
}
