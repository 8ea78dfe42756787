package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitPostgres(dsn string) error {
	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	return DB.Ping()
}

// EnsureWalletSchema 钱包表：session_id -> 余额（最小货币单位）
func EnsureWalletSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS wallets (
			session_id TEXT PRIMARY KEY,
			balance    BIGINT NOT NULL CHECK (balance >= 0),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}
