package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type redisLedger struct {
	rdb *redis.Client
}

func NewRedisLedger(rdb *redis.Client) Ledger {
	return &redisLedger{rdb: rdb}
}

// key 约定: bj:wallet:{sessionID} -> 余额字符串
func walletKey(id string) string {
	return fmt.Sprintf("bj:wallet:%s", id)
}

func (l *redisLedger) Get(ctx context.Context, id string) (int64, bool, error) {
	val, err := l.rdb.Get(ctx, walletKey(id)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	bal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: corrupt balance for %s", ErrStorageUnavailable, id)
	}
	return bal, true, nil
}

func (l *redisLedger) Set(ctx context.Context, id string, balance int64) error {
	// 钱包不设 TTL，引用期间不删除
	if err := l.rdb.Set(ctx, walletKey(id), balance, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
