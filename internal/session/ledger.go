package session

import "context"

// Ledger 钱包余额的持久化边界：session id -> 余额。
// 余额按最小货币单位的 int64 记（永远不用浮点，1.5 倍赔付反复叠加会漂移）。
// Get/Set 返回即视为已落盘；后端错误统一包成 ErrStorageUnavailable。
type Ledger interface {
	// Get 返回余额；条目不存在时 ok=false（不是错误）
	Get(ctx context.Context, id string) (balance int64, ok bool, err error)
	// Set 覆盖写入余额
	Set(ctx context.Context, id string, balance int64) error
}
