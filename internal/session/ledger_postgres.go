package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresLedger struct {
	db *sql.DB
}

// NewPostgresLedger 依赖 storage.EnsureWalletSchema 建好的 wallets 表
func NewPostgresLedger(db *sql.DB) Ledger {
	return &postgresLedger{db: db}
}

func (l *postgresLedger) Get(ctx context.Context, id string) (int64, bool, error) {
	var bal int64
	err := l.db.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE session_id = $1`, id).Scan(&bal)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return bal, true, nil
}

func (l *postgresLedger) Set(ctx context.Context, id string, balance int64) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO wallets (session_id, balance) VALUES ($1, $2)
		ON CONFLICT (session_id)
		DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`,
		id, balance)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
