package round

import (
	"testing"

	"BlockJack/internal/game/deck"

	"github.com/stretchr/testify/assert"
)

func card(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.NewCard(rank, suit)
}

// stacked 发牌顺序固定 玩家,玩家,庄家,庄家，之后按需抽
func stacked(cards ...deck.Card) *Round {
	return New(deck.NewStackedShoe(cards...))
}

// ✅ 玩家天牌、庄家 17：直接结算，赔 3:2 的那一档
func TestDealPlayerBlackjack(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("A", deck.Hearts), // player natural
		card("9", deck.Diamonds), card("8", deck.Clubs), // dealer 17
	)
	assert.NoError(t, r.Deal())

	assert.Equal(t, Settled, r.State())
	assert.Equal(t, PlayerBlackjack, r.Outcome())
	assert.Equal(t, "Blackjack! Player wins!", r.Message())
	assert.Equal(t, 21, r.PlayerScore())
	assert.Equal(t, 17, r.DealerScore())
}

// ✅ 双方天牌 → Push
func TestDealDoubleNaturalPush(t *testing.T) {
	r := stacked(
		card("A", deck.Spades), card("K", deck.Hearts),
		card("A", deck.Diamonds), card("Q", deck.Clubs),
	)
	assert.NoError(t, r.Deal())

	assert.Equal(t, Push, r.Outcome())
	assert.Equal(t, "Push! Both player and dealer have Blackjack.", r.Message())
	assert.True(t, r.Settled())
}

// ✅ 仅庄家天牌 → 庄家直接赢
func TestDealDealerBlackjack(t *testing.T) {
	r := stacked(
		card("9", deck.Spades), card("8", deck.Hearts), // player 17
		card("A", deck.Diamonds), card("K", deck.Clubs), // dealer natural
	)
	assert.NoError(t, r.Deal())

	assert.Equal(t, DealerWins, r.Outcome())
	assert.Equal(t, "Dealer has Blackjack. Dealer wins.", r.Message())
	assert.True(t, r.Settled())
}

// ✅ 无天牌 → 进入玩家回合
func TestDealNoNatural(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("5", deck.Hearts),
		card("9", deck.Diamonds), card("8", deck.Clubs),
	)
	assert.NoError(t, r.Deal())

	assert.Equal(t, PlayerTurn, r.State())
	assert.Equal(t, NoOutcome, r.Outcome())
	assert.False(t, r.Settled())
	assert.Len(t, r.PlayerCards(), 2)
	assert.Len(t, r.DealerCards(), 2)
}

// ✅ 15 点加牌到 25：爆牌结算，消息带确切点数，庄家不再补牌
func TestHitBust(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("5", deck.Hearts), // player 15
		card("9", deck.Diamonds), card("8", deck.Clubs), // dealer 17
		card("K", deck.Hearts), // hit -> 25
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Hit())

	assert.Equal(t, PlayerBust, r.Outcome())
	assert.Equal(t, "Player busts with 25! Dealer wins.", r.Message())
	assert.True(t, r.Settled())
	assert.Len(t, r.DealerCards(), 2) // 庄家手牌保持原样
}

// ✅ 玩家 18 停牌，庄家 12 补到 17 即停 → 玩家 1:1 胜
func TestStandDealerDrawsTo17(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("8", deck.Hearts), // player 18
		card("2", deck.Diamonds), card("10", deck.Clubs), // dealer 12
		card("5", deck.Hearts), // dealer -> 17, stop
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Stand())

	assert.Equal(t, PlayerWins, r.Outcome())
	assert.Equal(t, "Player wins with 18 against 17.", r.Message())
	assert.Equal(t, 17, r.DealerScore())
	assert.Len(t, r.DealerCards(), 3)
}

// ✅ 庄家软 17（A+6）必须停牌
func TestStandDealerStandsOnSoft17(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("8", deck.Hearts), // player 18
		card("A", deck.Diamonds), card("6", deck.Clubs), // dealer soft 17
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Stand())

	assert.Equal(t, PlayerWins, r.Outcome())
	assert.Len(t, r.DealerCards(), 2) // 软 17 不补
}

// ✅ 庄家爆牌 → 玩家胜
func TestStandDealerBusts(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("8", deck.Hearts), // player 18
		card("10", deck.Diamonds), card("6", deck.Clubs), // dealer 16
		card("K", deck.Hearts), // dealer -> 26, bust
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Stand())

	assert.Equal(t, PlayerWins, r.Outcome())
	assert.Equal(t, "Dealer busts with 26! Player wins.", r.Message())
}

// ✅ 同点 → Push
func TestStandPush(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("8", deck.Hearts),
		card("10", deck.Diamonds), card("8", deck.Clubs),
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Stand())

	assert.Equal(t, Push, r.Outcome())
	assert.Equal(t, "It's a tie (Push) with 18.", r.Message())
}

// ✅ 庄家点数高 → 庄家胜
func TestStandDealerWins(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("7", deck.Hearts), // player 17
		card("10", deck.Diamonds), card("9", deck.Clubs), // dealer 19
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Stand())

	assert.Equal(t, DealerWins, r.Outcome())
	assert.Equal(t, "Dealer wins with 19 against 17.", r.Message())
}

// ✅ 结算后 Hit/Stand 是 no-op：手牌、结果、消息都不变
func TestSettledIsImmutable(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("A", deck.Hearts),
		card("9", deck.Diamonds), card("8", deck.Clubs),
		card("2", deck.Hearts), // 不应被抽到
	)
	assert.NoError(t, r.Deal())
	assert.True(t, r.Settled())

	before := r.PlayerCards()
	msg := r.Message()

	assert.NoError(t, r.Hit())
	assert.NoError(t, r.Stand())

	assert.Equal(t, before, r.PlayerCards())
	assert.Equal(t, msg, r.Message())
	assert.Equal(t, PlayerBlackjack, r.Outcome())
}

// ✅ 未发牌前 Hit/Stand 同样是 no-op
func TestHitStandBeforeDeal(t *testing.T) {
	r := New(deck.NewSeededShoe(1))
	assert.NoError(t, r.Hit())
	assert.NoError(t, r.Stand())
	assert.Equal(t, Dealing, r.State())
	assert.Empty(t, r.PlayerCards())
}

// ✅ 重复 Deal 是 no-op，不会重发
func TestDealTwice(t *testing.T) {
	r := stacked(
		card("10", deck.Spades), card("5", deck.Hearts),
		card("9", deck.Diamonds), card("8", deck.Clubs),
		card("2", deck.Hearts),
	)
	assert.NoError(t, r.Deal())
	assert.NoError(t, r.Deal())
	assert.Len(t, r.PlayerCards(), 2)
}

// ✅ 牌靴抽空向上抛 ErrShoeEmpty
func TestDealShoeEmpty(t *testing.T) {
	r := stacked(card("10", deck.Spades)) // 只有一张
	assert.ErrorIs(t, r.Deal(), deck.ErrShoeEmpty)
}
