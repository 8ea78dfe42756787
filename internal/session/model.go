package session

import (
	"sync"

	"BlockJack/internal/game/deck"
	"BlockJack/internal/game/round"
)

// Session 一个玩家钱包 + 至多一局未结算的 Round。
// 余额的权威副本在 Ledger 里，这里只挂内存态。
// mu 把「读局 → 变更 → 落盘」整段串行化，同一 session 的并发请求不会竞态。
type Session struct {
	mu    sync.Mutex
	ID    string
	Bet   int64        // 当前局押注（最小货币单位）
	Round *round.Round // nil = 没有进行中的局
}

// RoundView 交给传输层的只读快照。DealerHand 给全量，
// 未结算时要不要遮牌由调用方决定。
type RoundView struct {
	Message     string      `json:"message"`
	PlayerHand  []deck.Card `json:"playerHand"`
	DealerHand  []deck.Card `json:"dealerHand"`
	PlayerScore int         `json:"playerScore"`
	DealerScore int         `json:"dealerScore"`
	Settled     bool        `json:"settled"`
	Balance     int64       `json:"balance"`
}

// StartRequest 前端提交的开局请求
type StartRequest struct {
	Bet int64 `json:"bet" binding:"required"`
}
