package session

import (
	"context"
	"fmt"
	"sync"

	"BlockJack/internal/game/deck"
	"BlockJack/internal/game/round"
	"BlockJack/internal/utils"
	"BlockJack/internal/websocket"

	"github.com/google/uuid"
)

type HubBroadcaster interface {
	SendToSession(id string, msg websocket.OutgoingMessage)
}

// Service 会话注册表 + 下注/结算流程。
// 注册表锁只保护 map；每局的读改写在各自 Session.mu 里串行，
// 不同 session 之间互不阻塞。
type Service struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	ledger          Ledger
	hub             HubBroadcaster // 可为 nil（无推送）
	startingBalance int64
	newShoe         func() (*deck.Shoe, error) // 测试替换为摆好的牌靴
}

func NewService(ledger Ledger, startingBalance int64, hub HubBroadcaster) *Service {
	return &Service{
		sessions:        make(map[string]*Session),
		ledger:          ledger,
		hub:             hub,
		startingBalance: startingBalance,
		newShoe:         deck.NewShoe,
	}
}

// session 取或建内存条目。条目只是锁的载体，
// 钱包是否存在以 Ledger 为准。
func (s *Service) session(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess = &Session{ID: id}
	s.sessions[id] = sess
	return sess
}

// Create 新会话：uuid + 初始余额落盘
func (s *Service) Create(ctx context.Context) (string, int64, error) {
	id := uuid.NewString()
	if err := s.ledger.Set(ctx, id, s.startingBalance); err != nil {
		return "", 0, err
	}
	s.session(id)
	return id, s.startingBalance, nil
}

// Resume 已有会话取余额
func (s *Service) Resume(ctx context.Context, id string) (int64, error) {
	bal, ok, err := s.ledger.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownSession
	}
	return bal, nil
}

// StartRound 校验 → 先扣注落盘 → 再发牌。
// 扣注在发牌之前：中途崩溃最多丢一注，绝不会出现没扣注还赔付的局。
// 天牌当场结算后才返回。
func (s *Service) StartRound(ctx context.Context, id string, bet int64) (*RoundView, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bal, ok, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownSession
	}
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	if bet > bal {
		return nil, fmt.Errorf("%w: balance is %d", ErrInsufficientFunds, bal)
	}
	if sess.Round != nil {
		return nil, ErrRoundActive
	}

	if err := s.ledger.Set(ctx, id, bal-bet); err != nil {
		return nil, err
	}

	shoe, err := s.newShoe()
	if err != nil {
		// 熵源不可用：退还扣注，局未开始
		_ = s.ledger.Set(ctx, id, bal)
		return nil, fmt.Errorf("new shoe: %w", err)
	}

	sess.Round = round.New(shoe)
	sess.Bet = bet
	if err := sess.Round.Deal(); err != nil {
		return nil, s.abortRound(ctx, sess, err)
	}
	return s.conclude(ctx, sess)
}

// Hit 加牌。打到恰好 21 点时当场替玩家 Stand（auto-stand-on-21），
// 这局不需要再等任何玩家动作就能到结算。
func (s *Service) Hit(ctx context.Context, id string) (*RoundView, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	r := sess.Round
	if r == nil {
		return nil, ErrNoActiveRound
	}
	if !r.Settled() {
		if err := r.Hit(); err != nil {
			return nil, s.abortRound(ctx, sess, err)
		}
		if !r.Settled() && r.PlayerScore() == 21 {
			if err := r.Stand(); err != nil {
				return nil, s.abortRound(ctx, sess, err)
			}
		}
	}
	return s.conclude(ctx, sess)
}

// Stand 停牌，庄家补牌并结算
func (s *Service) Stand(ctx context.Context, id string) (*RoundView, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	r := sess.Round
	if r == nil {
		return nil, ErrNoActiveRound
	}
	if !r.Settled() {
		if err := r.Stand(); err != nil {
			return nil, s.abortRound(ctx, sess, err)
		}
	}
	return s.conclude(ctx, sess)
}

// ResetWallet 管理操作：余额重置为初始值，进行中的局直接作废
func (s *Service) ResetWallet(ctx context.Context, id string) (int64, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ledger.Set(ctx, id, s.startingBalance); err != nil {
		return 0, err
	}
	sess.Round = nil
	sess.Bet = 0
	s.push(id, "wallet_reset", map[string]any{"balance": s.startingBalance})
	return s.startingBalance, nil
}

// conclude 算钱 + 出视图。已结算的局先按赔付表入账，
// 入账成功才把局从注册表摘掉——之后再 hit/stand 只会拿到 ErrNoActiveRound，
// 同一局绝不会二次入账。
func (s *Service) conclude(ctx context.Context, sess *Session) (*RoundView, error) {
	r := sess.Round
	bal, _, err := s.ledger.Get(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if r.Settled() {
		if payout := payoutFor(r.Outcome(), sess.Bet); payout > 0 {
			bal += payout
			if err := s.ledger.Set(ctx, sess.ID, bal); err != nil {
				// 入账失败时留着局，调用方重试 stand 会再走到这里
				return nil, err
			}
		}
		sess.Round = nil
		sess.Bet = 0
	}
	view := viewOf(r, bal)
	s.push(sess.ID, "round_update", view)
	return view, nil
}

// abortRound 只给 ErrShoeEmpty 这类不变量破坏用：记日志、退注、弃局
func (s *Service) abortRound(ctx context.Context, sess *Session, cause error) error {
	utils.Error.Printf("round aborted for session %s: %v", sess.ID, cause)
	if bal, ok, err := s.ledger.Get(ctx, sess.ID); err == nil && ok {
		_ = s.ledger.Set(ctx, sess.ID, bal+sess.Bet)
	}
	sess.Round = nil
	sess.Bet = 0
	return fmt.Errorf("round aborted: %w", cause)
}

// payoutFor 结算表（对已扣注余额的入账额）：
//
//	PlayerBlackjack -> bet + bet*3/2  (3:2，整数除法，奇数注的半分向下取整)
//	Push            -> bet            (只退注)
//	PlayerWins      -> bet*2          (本金 + 1:1)
//	DealerWins/Bust -> 0              (注已没收)
func payoutFor(o round.Outcome, bet int64) int64 {
	switch o {
	case round.PlayerBlackjack:
		return bet + bet*3/2
	case round.Push:
		return bet
	case round.PlayerWins:
		return bet * 2
	}
	return 0
}

func viewOf(r *round.Round, balance int64) *RoundView {
	return &RoundView{
		Message:     r.Message(),
		PlayerHand:  r.PlayerCards(),
		DealerHand:  r.DealerCards(),
		PlayerScore: r.PlayerScore(),
		DealerScore: r.DealerScore(),
		Settled:     r.Settled(),
		Balance:     balance,
	}
}

func (s *Service) push(id, event string, data any) {
	if s.hub == nil {
		return
	}
	s.hub.SendToSession(id, websocket.OutgoingMessage{Event: event, Data: data})
}
