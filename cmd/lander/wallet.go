package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagWalletCaptain string
	flagDeposit       int
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show or top up a captain's coins",
	Long: `Shows the coin balance and the product waiting for the next run.

Examples:
  lander wallet
  lander wallet --captain neil --deposit 50`,
	Args: cobra.NoArgs,
	Run:  runWallet,
}

func init() {
	walletCmd.Flags().StringVar(&flagWalletCaptain, "captain", "", "Captain name (default: login name)")
	walletCmd.Flags().IntVar(&flagDeposit, "deposit", 0, "Coins to add to the wallet")
}

func runWallet(_ *cobra.Command, _ []string) {
	captain := flagWalletCaptain
	if captain == "" {
		captain = defaultCaptain()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	account, err := store.EnsureAccount(captain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	coins, err := store.Balance(captain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if flagDeposit > 0 {
		if coins, err = store.AddCoins(captain, flagDeposit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("coins deposited", "captain", captain, "coins", flagDeposit)
	}

	fmt.Printf("Captain %s\n", captain)
	fmt.Printf("  Account: %s\n", account.ID)
	fmt.Printf("  Coins:   %d\n", coins)
	if p, err := store.Pending(captain); err == nil && p != nil {
		fmt.Printf("  Next run: %s\n", p.Name)
	}

	best, err := store.CaptainScores(captain, 3)
	if err != nil || len(best) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("  Best runs:")
	for _, e := range best {
		fmt.Printf("    %-14s  %3d  %s\n", e.GameID, e.Score, e.CreatedAt.Format("2006-01-02"))
	}
}
