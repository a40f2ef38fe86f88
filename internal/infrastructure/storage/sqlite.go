// Package storage provides SQLite-based persistence for player accounts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrUnknownAccount is returned when a login has no account
var ErrUnknownAccount = errors.New("storage: unknown account")

// Store manages the SQLite database connection for account persistence.
type Store struct {
	db     *sql.DB
	levels int
}

// Account is one player record
type Account struct {
	Login     string
	Score     int
	Levels    []int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// levels is the number of levels tracked per account.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, levels int) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if levels < 1 {
		levels = 1
	}
	store := &Store{db: db, levels: levels}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS players (
			nick TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			levels TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_score ON players(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// EncodeLevels formats per-level progress as a comma separated list
func EncodeLevels(levels []int) string {
	parts := make([]string, len(levels))
	for i, n := range levels {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// DecodeLevels parses a comma separated progress list.
// Malformed entries read as 0.
func DecodeLevels(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err == nil {
			out[i] = n
		}
	}
	return out
}

// fit pads or truncates progress to the tracked level count
func (s *Store) fit(levels []int) []int {
	out := make([]int, s.levels)
	copy(out, levels)
	return out
}

// CreateOrResetAccount creates an account, or resets the score and progress
// of an existing one and sets its new password.
// Returns false without touching the database when login or password is empty.
func (s *Store) CreateOrResetAccount(login, password string) (bool, error) {
	if login == "" || password == "" {
		return false, nil
	}

	_, err := s.db.Exec(
		`INSERT INTO players (nick, password, score, levels)
		 VALUES (?, ?, 0, ?)
		 ON CONFLICT(nick) DO UPDATE SET
			password = excluded.password,
			score = 0,
			levels = excluded.levels,
			updated_at = CURRENT_TIMESTAMP`,
		login, hashPassword(password), EncodeLevels(make([]int, s.levels)),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot create account: %w", err)
	}
	return true, nil
}

// Authenticate checks a login and password pair
func (s *Store) Authenticate(login, password string) (bool, error) {
	var stored string
	err := s.db.QueryRow("SELECT password FROM players WHERE nick = ?", login).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query account: %w", err)
	}
	return stored == hashPassword(password), nil
}

// Score returns the total score of an account
func (s *Store) Score(login string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM players WHERE nick = ?", login).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, login)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query score: %w", err)
	}
	return score, nil
}

// LevelProgress returns the best captured coins per level, one entry per
// tracked level.
func (s *Store) LevelProgress(login string) ([]int, error) {
	var levels string
	err := s.db.QueryRow("SELECT levels FROM players WHERE nick = ?", login).Scan(&levels)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, login)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return s.fit(DecodeLevels(levels)), nil
}

// SaveProgress stores the score and per-level progress of an account
func (s *Store) SaveProgress(login string, score int, levels []int) error {
	result, err := s.db.Exec(
		`UPDATE players SET score = ?, levels = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE nick = ?`,
		score, EncodeLevels(s.fit(levels)), login,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, login)
	}
	return nil
}

// TopAccounts returns accounts ordered by score descending
func (s *Store) TopAccounts(limit int) ([]Account, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT nick, score, levels, updated_at
		 FROM players
		 ORDER BY score DESC, nick ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		var levels string
		var updatedAt any
		if err := rows.Scan(&a.Login, &a.Score, &levels, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.Levels = s.fit(DecodeLevels(levels))

		switch v := updatedAt.(type) {
		case time.Time:
			a.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				a.UpdatedAt = parsed
			}
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return accounts, nil
}
