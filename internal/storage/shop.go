package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Currencies a product can be priced in.
const (
	CurrencyCoins = "COINS"
	CurrencyUSD   = "USD"
)

// Effect is what a product does for the captain.
type Effect string

const (
	EffectBlueShip Effect = "ship"
	EffectShield   Effect = "shield"
	EffectFuelPack Effect = "fuelpack"
	EffectCoins    Effect = "coins" // adds CoinPack coins to the wallet
)

// CoinPack is the number of coins bought with the coins product.
const CoinPack = 100

var (
	// ErrInsufficientFunds is returned when the wallet cannot pay a price.
	ErrInsufficientFunds = errors.New("storage: insufficient funds")

	// ErrUnknownProduct is returned when buying a product that does not exist.
	ErrUnknownProduct = errors.New("storage: unknown product")
)

// Product is an item sold in the shop.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int
	Currency    string
	Effect      Effect
}

// ProductID returns the name-based ID of a product.
func ProductID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte("product."+name))
}

// DefaultProducts are seeded into an empty product table.
func DefaultProducts() []Product {
	return []Product{
		{Name: "Blue Ship", Description: "Super mega blue ship", Price: 50, Currency: CurrencyCoins, Effect: EffectBlueShip},
		{Name: "Shield", Description: "Survive one alien bomb", Price: 20, Currency: CurrencyCoins, Effect: EffectShield},
		{Name: "Fuel Pack", Description: "Slow fuel consumption", Price: 30, Currency: CurrencyCoins, Effect: EffectFuelPack},
		{Name: "100 Coins", Description: "Buy 100 coins", Price: 100, Currency: CurrencyUSD, Effect: EffectCoins},
	}
}

func (s *Store) seedProducts() error {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range DefaultProducts() {
		if _, err := s.db.Exec(
			"INSERT INTO products (id, name, description, price, currency, effect) VALUES (?, ?, ?, ?, ?, ?)",
			ProductID(p.Name).String(), p.Name, p.Description, p.Price, p.Currency, string(p.Effect),
		); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p      Product
		id     string
		effect string
	)
	if err := row.Scan(&id, &p.Name, &p.Description, &p.Price, &p.Currency, &effect); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt product id %q: %w", id, err)
	}
	p.ID = parsed
	p.Effect = Effect(effect)
	return &p, nil
}

const productColumns = "id, name, description, price, currency, effect"

// Products lists the shop, cheapest first.
func (s *Store) Products() ([]Product, error) {
	rows, err := s.db.Query("SELECT " + productColumns + " FROM products ORDER BY currency, price, name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return products, nil
}

// Product looks up a product by name. Returns nil, nil if none exists.
func (s *Store) Product(name string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE name = ?", name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query product: %w", err)
	}
	return p, nil
}

// Buy pays for a product. Coin-priced products are debited from the
// wallet and become the captain's pending consumable, replacing any
// earlier one. The coins product is a simulated real-money purchase that
// credits the wallet instead. Buy returns the new balance.
func (s *Store) Buy(captain, productName string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := scanProduct(tx.QueryRow("SELECT "+productColumns+" FROM products WHERE name = ?", productName))
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productName)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query product: %w", err)
	}

	var balance int
	if p.Currency != CurrencyCoins {
		if p.Effect != EffectCoins {
			return 0, fmt.Errorf("storage: product %s cannot be bought with %s", p.Name, p.Currency)
		}
		balance, err = deposit(tx, captain, CoinPack)
		if err != nil {
			return 0, err
		}
	} else {
		id, err := accountID(tx, captain)
		if err != nil {
			return 0, err
		}
		if err := tx.QueryRow("SELECT coins FROM wallets WHERE account_id = ?", id).Scan(&balance); err != nil {
			return 0, fmt.Errorf("storage: cannot query balance: %w", err)
		}
		if balance < p.Price {
			return balance, fmt.Errorf("%w: %s costs %d, wallet has %d", ErrInsufficientFunds, p.Name, p.Price, balance)
		}
		if balance, err = deposit(tx, captain, -p.Price); err != nil {
			return 0, err
		}
		if _, err := tx.Exec(
			`INSERT INTO stash (account_id, product_id) VALUES (?, ?)
			 ON CONFLICT(account_id) DO UPDATE SET product_id = excluded.product_id, bought_at = CURRENT_TIMESTAMP`,
			id, p.ID.String(),
		); err != nil {
			return 0, fmt.Errorf("storage: cannot stash product: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit purchase: %w", err)
	}
	return balance, nil
}

// Pending returns the captain's unconsumed product. Returns nil, nil if
// there is none.
func (s *Store) Pending(captain string) (*Product, error) {
	p, err := scanProduct(s.db.QueryRow(
		`SELECT p.id, p.name, p.description, p.price, p.currency, p.effect
		 FROM stash st
		 JOIN accounts a ON a.id = st.account_id
		 JOIN products p ON p.id = st.product_id
		 WHERE a.name = ?`,
		captain,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pending product: %w", err)
	}
	return p, nil
}

// Consume removes the captain's pending product and returns the loadout
// it grants for one run. Without a pending product the loadout is empty.
func (s *Store) Consume(captain string) (core.Loadout, error) {
	p, err := s.Pending(captain)
	if err != nil || p == nil {
		return core.Loadout{}, err
	}
	if _, err := s.db.Exec(
		"DELETE FROM stash WHERE account_id = (SELECT id FROM accounts WHERE name = ?)",
		captain,
	); err != nil {
		return core.Loadout{}, fmt.Errorf("storage: cannot consume product: %w", err)
	}
	return p.Loadout(), nil
}

// Loadout converts a product into the run modifiers it grants.
func (p Product) Loadout() core.Loadout {
	return core.Loadout{
		BlueShip: p.Effect == EffectBlueShip,
		Shield:   p.Effect == EffectShield,
		FuelPack: p.Effect == EffectFuelPack,
	}
}
