package session

import "errors"

// 会话边界只返回 error，绝不向调用方 panic
var (
	ErrUnknownSession     = errors.New("unknown session")
	ErrInvalidBet         = errors.New("bet must be a positive amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrRoundActive        = errors.New("a round is already in progress")
	ErrNoActiveRound      = errors.New("no round in progress")
	ErrStorageUnavailable = errors.New("wallet storage unavailable")
)
