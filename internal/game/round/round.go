package round

import (
	"fmt"

	"BlockJack/internal/game/deck"
)

// State 单局状态机：Dealing → PlayerTurn → DealerTurn → Settled。
// 天牌（natural）可以从 Dealing 直接进入 Settled。
type State int

const (
	Dealing State = iota
	PlayerTurn
	DealerTurn
	Settled
)

// Outcome 结算只认枚举，不做消息文本匹配
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerBlackjack
	PlayerWins
	DealerWins
	PlayerBust
	Push
)

func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "PLAYER_BLACKJACK"
	case PlayerWins:
		return "PLAYER_WINS"
	case DealerWins:
		return "DEALER_WINS"
	case PlayerBust:
		return "PLAYER_BUST"
	case Push:
		return "PUSH"
	}
	return "NONE"
}

// Round 一局的全部状态：双方手牌、牌靴、终局结果与提示文本。
// 进入 Settled 之后手牌不再变化，Hit/Stand 变成返回现状的 no-op。
type Round struct {
	shoe    *deck.Shoe
	player  deck.Hand
	dealer  deck.Hand
	state   State
	outcome Outcome
	message string
}

func New(shoe *deck.Shoe) *Round {
	return &Round{shoe: shoe, state: Dealing}
}

// Deal 只在 Dealing 有效。发牌顺序固定：玩家、玩家、庄家、庄家。
// 双方天牌 → Push；仅玩家 → PlayerBlackjack；仅庄家 → DealerWins；
// 有天牌直接 Settled，否则进入 PlayerTurn。
func (r *Round) Deal() error {
	if r.state != Dealing {
		return nil
	}
	for _, h := range []*deck.Hand{&r.player, &r.player, &r.dealer, &r.dealer} {
		c, err := r.shoe.Draw()
		if err != nil {
			return err
		}
		h.Add(c)
	}

	playerNatural := r.player.IsNatural()
	dealerNatural := r.dealer.IsNatural()

	switch {
	case playerNatural && dealerNatural:
		r.settle(Push, "Push! Both player and dealer have Blackjack.")
	case playerNatural:
		r.settle(PlayerBlackjack, "Blackjack! Player wins!")
	case dealerNatural:
		r.settle(DealerWins, "Dealer has Blackjack. Dealer wins.")
	default:
		r.state = PlayerTurn
		r.message = "Welcome to BlockJack!"
	}
	return nil
}

// Hit 只在 PlayerTurn 有效；其他状态是 no-op（调用方要自己看状态）。
// 爆牌 → PlayerBust + Settled。
func (r *Round) Hit() error {
	if r.state != PlayerTurn {
		return nil
	}
	c, err := r.shoe.Draw()
	if err != nil {
		return err
	}
	r.player.Add(c)
	if score := r.player.Score(); score > 21 {
		r.settle(PlayerBust, fmt.Sprintf("Player busts with %d! Dealer wins.", score))
	}
	return nil
}

// Stand 只在 PlayerTurn 有效。庄家 <17 必须补牌（软 17 也停），
// 然后比点定胜负，必然进入 Settled。
func (r *Round) Stand() error {
	if r.state != PlayerTurn {
		return nil
	}
	r.state = DealerTurn
	for r.dealer.Score() < 17 {
		c, err := r.shoe.Draw()
		if err != nil {
			return err
		}
		r.dealer.Add(c)
	}
	r.resolve()
	return nil
}

// resolve 玩家爆牌在 Hit 里已处理，这里只剩庄家爆牌和比点
func (r *Round) resolve() {
	ps, ds := r.player.Score(), r.dealer.Score()
	switch {
	case ds > 21:
		r.settle(PlayerWins, fmt.Sprintf("Dealer busts with %d! Player wins.", ds))
	case ps > ds:
		r.settle(PlayerWins, fmt.Sprintf("Player wins with %d against %d.", ps, ds))
	case ps < ds:
		r.settle(DealerWins, fmt.Sprintf("Dealer wins with %d against %d.", ds, ps))
	default:
		r.settle(Push, fmt.Sprintf("It's a tie (Push) with %d.", ps))
	}
}

func (r *Round) settle(o Outcome, msg string) {
	r.state = Settled
	r.outcome = o
	r.message = msg
}

func (r *Round) State() State   { return r.state }
func (r *Round) Outcome() Outcome { return r.outcome }
func (r *Round) Message() string { return r.message }
func (r *Round) Settled() bool  { return r.state == Settled }
func (r *Round) PlayerScore() int { return r.player.Score() }
func (r *Round) DealerScore() int { return r.dealer.Score() }
func (r *Round) PlayerCards() []deck.Card { return r.player.Cards() }
func (r *Round) DealerCards() []deck.Card { return r.dealer.Cards() }
