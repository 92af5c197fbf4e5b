package gen

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// Cache stores generated plan documents keyed by profile content and seed,
// so repeated runs over an unchanged profile skip regeneration.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the SQLite plan cache at dir/plans.db.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "plans.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening plan cache: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS generated_plans (
		key          TEXT PRIMARY KEY,
		plan_json    BLOB NOT NULL,
		generated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Key derives the cache key from the raw profile bytes and the seed.
func Key(profileBytes []byte, seed int64) string {
	h := sha256.New()
	h.Write(profileBytes)
	h.Write([]byte(strconv.FormatInt(seed, 10)))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached plan JSON for a key, or nil on a miss.
func (c *Cache) Get(key string) ([]byte, error) {
	var data []byte
	err := c.db.QueryRow(
		`SELECT plan_json FROM generated_plans WHERE key = ?`, key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores plan JSON under a key, replacing any previous entry.
func (c *Cache) Put(key string, planJSON []byte) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO generated_plans (key, plan_json) VALUES (?, ?)`,
		key, planJSON,
	)
	return err
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
