package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCoins is the wallet balance of a new captain.
const DefaultCoins = 100

var (
	// ErrEmptyName is returned when an account is created without a name.
	ErrEmptyName = errors.New("storage: captain name is empty")

	// ErrUnknownAccount is returned by wallet and shop operations for a
	// captain that has no account.
	ErrUnknownAccount = errors.New("storage: unknown captain")
)

// Account is a captain. Accounts are keyed by name; the ID is derived
// from the name so the same captain gets the same ID in every database.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// AccountID returns the name-based (SHA-1, version 5) ID of a captain.
func AccountID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte("captain."+name))
}

// Account looks up a captain by name. Returns nil, nil if none exists.
func (s *Store) Account(name string) (*Account, error) {
	var (
		a         Account
		id        string
		createdAt any
	)
	err := s.db.QueryRow(
		"SELECT id, name, created_at FROM accounts WHERE name = ?",
		name,
	).Scan(&id, &a.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query account: %w", err)
	}

	a.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("storage: corrupt account id %q: %w", id, err)
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}

// CreateAccount creates a captain with a wallet of DefaultCoins.
func (s *Store) CreateAccount(name string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := AccountID(name)
	if _, err := tx.Exec("INSERT INTO accounts (id, name) VALUES (?, ?)", id.String(), name); err != nil {
		return nil, fmt.Errorf("storage: cannot create account: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO wallets (account_id, coins) VALUES (?, ?)", id.String(), DefaultCoins); err != nil {
		return nil, fmt.Errorf("storage: cannot create wallet: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: cannot commit account: %w", err)
	}

	return s.Account(name)
}

// EnsureAccount returns the captain's account, creating it if missing.
func (s *Store) EnsureAccount(name string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	a, err := s.Account(name)
	if err != nil || a != nil {
		return a, err
	}
	return s.CreateAccount(name)
}

// Balance returns the captain's coins.
func (s *Store) Balance(name string) (int, error) {
	var coins int
	err := s.db.QueryRow(
		`SELECT w.coins FROM wallets w
		 JOIN accounts a ON a.id = w.account_id
		 WHERE a.name = ?`,
		name,
	).Scan(&coins)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return coins, nil
}

// AddCoins deposits coins and returns the new balance.
func (s *Store) AddCoins(name string, coins int) (int, error) {
	if coins <= 0 {
		return 0, fmt.Errorf("storage: deposit must be positive, got %d", coins)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	balance, err := deposit(tx, name, coins)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit deposit: %w", err)
	}
	return balance, nil
}

// deposit adds coins (negative to debit) inside tx and returns the new
// balance.
func deposit(tx *sql.Tx, name string, coins int) (int, error) {
	id, err := accountID(tx, name)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec("UPDATE wallets SET coins = coins + ? WHERE account_id = ?", coins, id); err != nil {
		return 0, fmt.Errorf("storage: cannot update wallet: %w", err)
	}
	var balance int
	if err := tx.QueryRow("SELECT coins FROM wallets WHERE account_id = ?", id).Scan(&balance); err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return balance, nil
}

func accountID(tx *sql.Tx, name string) (string, error) {
	var id string
	err := tx.QueryRow("SELECT id FROM accounts WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query account: %w", err)
	}
	return id, nil
}
