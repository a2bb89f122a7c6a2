package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAccountLookupMiss(t *testing.T) {
	store := openTestStore(t)

	a, err := store.Account("nobody")
	if err != nil {
		t.Fatalf("Account() failed: %v", err)
	}
	if a != nil {
		t.Errorf("Expected nil account, got %+v", a)
	}

	if _, err := store.Balance("nobody"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Balance() error = %v, want ErrUnknownAccount", err)
	}
}

func TestEnsureAccount(t *testing.T) {
	store := openTestStore(t)

	a, err := store.EnsureAccount("  armstrong ")
	if err != nil {
		t.Fatalf("EnsureAccount() failed: %v", err)
	}
	if a.Name != "armstrong" {
		t.Errorf("Name = %q, want trimmed", a.Name)
	}
	if a.ID != AccountID("armstrong") {
		t.Errorf("ID = %s, want name-based %s", a.ID, AccountID("armstrong"))
	}
	if a.ID.Version() != 5 {
		t.Errorf("ID version = %d, want 5", a.ID.Version())
	}

	again, err := store.EnsureAccount("armstrong")
	if err != nil {
		t.Fatalf("EnsureAccount() second call failed: %v", err)
	}
	if again.ID != a.ID {
		t.Error("EnsureAccount created a second account")
	}

	balance, err := store.Balance("armstrong")
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if balance != DefaultCoins {
		t.Errorf("Balance = %d, want %d", balance, DefaultCoins)
	}

	if _, err := store.CreateAccount("armstrong"); err == nil {
		t.Error("Expected duplicate account to fail")
	}
	if _, err := store.EnsureAccount("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("EnsureAccount(blank) error = %v, want ErrEmptyName", err)
	}
}

func TestProductsSeeded(t *testing.T) {
	store := openTestStore(t)

	products, err := store.Products()
	if err != nil {
		t.Fatalf("Products() failed: %v", err)
	}
	if len(products) != len(DefaultProducts()) {
		t.Fatalf("Expected %d products, got %d", len(DefaultProducts()), len(products))
	}
	// Coin-priced products first, cheapest first.
	if products[0].Name != "Shield" || products[len(products)-1].Currency != CurrencyUSD {
		t.Errorf("unexpected order: %v", products)
	}

	p, err := store.Product("Fuel Pack")
	if err != nil || p == nil {
		t.Fatalf("Product() = %v, %v", p, err)
	}
	if p.Price != 30 || p.Effect != EffectFuelPack || p.ID != ProductID("Fuel Pack") {
		t.Errorf("unexpected product %+v", p)
	}

	missing, err := store.Product("Warp Drive")
	if err != nil || missing != nil {
		t.Errorf("Product(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestProductsSeededOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i, err)
		}
		products, err := store.Products()
		store.Close()
		if err != nil {
			t.Fatalf("Products() failed: %v", err)
		}
		if len(products) != len(DefaultProducts()) {
			t.Errorf("open #%d: %d products", i, len(products))
		}
	}
}

func TestBuyAndConsume(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.EnsureAccount("armstrong"); err != nil {
		t.Fatal(err)
	}

	balance, err := store.Buy("armstrong", "Shield")
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if balance != DefaultCoins-20 {
		t.Errorf("balance = %d, want %d", balance, DefaultCoins-20)
	}

	// A second purchase replaces the pending one.
	balance, err = store.Buy("armstrong", "Fuel Pack")
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if balance != DefaultCoins-50 {
		t.Errorf("balance = %d, want %d", balance, DefaultCoins-50)
	}

	pending, err := store.Pending("armstrong")
	if err != nil || pending == nil {
		t.Fatalf("Pending() = %v, %v", pending, err)
	}
	if pending.Name != "Fuel Pack" {
		t.Errorf("pending = %q, want Fuel Pack", pending.Name)
	}

	loadout, err := store.Consume("armstrong")
	if err != nil {
		t.Fatalf("Consume() failed: %v", err)
	}
	if loadout != (core.Loadout{FuelPack: true}) {
		t.Errorf("loadout = %+v", loadout)
	}

	loadout, err = store.Consume("armstrong")
	if err != nil {
		t.Fatalf("second Consume() failed: %v", err)
	}
	if loadout != (core.Loadout{}) {
		t.Errorf("second consume returned %+v, want empty", loadout)
	}
}

func TestBuyInsufficientFunds(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.EnsureAccount("armstrong"); err != nil {
		t.Fatal(err)
	}

	// 100 -> 50 -> 0, exact balance is enough.
	for i := 0; i < 2; i++ {
		if _, err := store.Buy("armstrong", "Blue Ship"); err != nil {
			t.Fatalf("Buy() #%d failed: %v", i, err)
		}
	}

	_, err := store.Buy("armstrong", "Shield")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Buy() error = %v, want ErrInsufficientFunds", err)
	}
	balance, _ := store.Balance("armstrong")
	if balance != 0 {
		t.Errorf("balance changed by failed purchase: %d", balance)
	}
	pending, _ := store.Pending("armstrong")
	if pending == nil || pending.Effect != EffectBlueShip {
		t.Errorf("failed purchase replaced pending product: %+v", pending)
	}
}

func TestBuyCoins(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.EnsureAccount("armstrong"); err != nil {
		t.Fatal(err)
	}

	balance, err := store.Buy("armstrong", "100 Coins")
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if balance != DefaultCoins+CoinPack {
		t.Errorf("balance = %d, want %d", balance, DefaultCoins+CoinPack)
	}
	if pending, _ := store.Pending("armstrong"); pending != nil {
		t.Errorf("coins became a consumable: %+v", pending)
	}

	balance, err = store.AddCoins("armstrong", 5)
	if err != nil || balance != DefaultCoins+CoinPack+5 {
		t.Errorf("AddCoins() = %d, %v", balance, err)
	}
	if _, err := store.AddCoins("armstrong", 0); err == nil {
		t.Error("Expected error for zero deposit")
	}
}

func TestBuyErrors(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.EnsureAccount("armstrong"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		captain string
		product string
		want    error
	}{
		{"unknown product", "armstrong", "Warp Drive", ErrUnknownProduct},
		{"unknown captain", "gagarin", "Shield", ErrUnknownAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Buy(tt.captain, tt.product); !errors.Is(err, tt.want) {
				t.Errorf("Buy() error = %v, want %v", err, tt.want)
			}
		})
	}
}
