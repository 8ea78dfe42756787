package deck

import "strings"

// Hand 按发牌顺序保存（顺序只影响展示，不影响算分）
type Hand struct {
	cards []Card
}

func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Cards 返回拷贝，外部拿不到可变引用
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Score A 先按 11 算；超过 21 时每张 A 依次减 10，直到 ≤21 或没有软 A。
// 空手牌为 0。结果只依赖 A 的数量，与加牌顺序无关。
func (h *Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h.cards {
		score += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// IsNatural 恰好两张凑成 21（Blackjack），区别于打到 21
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Score() == 21
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
