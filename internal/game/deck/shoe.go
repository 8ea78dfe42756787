package deck

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// ErrShoeEmpty 单副牌 52 张抽完后再抽
var ErrShoeEmpty = errors.New("shoe is empty")

// Shoe 单副 52 张，构造时洗一次，之后只按顺序抽取，不补牌
type Shoe struct {
	cards []Card
}

// NewShoe 熵源不可用是致命错误，直接向上抛
func NewShoe() (*Shoe, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("shoe seed: %w", err)
	}
	return NewSeededShoe(int64(binary.BigEndian.Uint64(b[:]))), nil
}

// NewSeededShoe 固定种子版本，测试用
func NewSeededShoe(seed int64) *Shoe {
	s := &Shoe{cards: makeDeck()}
	s.shuffle(rand.New(rand.NewSource(seed)))
	return s
}

// NewStackedShoe 不洗牌，按给定顺序抽取（测试摆牌用）
func NewStackedShoe(cards ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cards...)}
}

func makeDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// shuffle Fisher–Yates：i 从末尾到 1，和 [0,i] 内均匀随机的 j 交换
func (s *Shoe) shuffle(rnd *rand.Rand) {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw 抽掉并返回下一张。正确的发牌规则下不可能抽空，但必须检查
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c, nil
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
