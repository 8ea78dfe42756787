package deck

import "testing"

func handOf(ranks ...Rank) *Hand {
	h := &Hand{}
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	for i, r := range ranks {
		h.Add(NewCard(r, suits[i%4]))
	}
	return h
}

// ✅ 算分：A 先按 11，超 21 再逐个减 10
func TestHandScore(t *testing.T) {
	cases := []struct {
		ranks []Rank
		want  int
	}{
		{nil, 0},                         // 空手牌
		{[]Rank{"10", "5"}, 15},          //
		{[]Rank{"A", "K"}, 21},           // 天牌
		{[]Rank{"A", "A"}, 12},           // 11+11 -> 11+1
		{[]Rank{"A", "A", "9"}, 21},      //
		{[]Rank{"A", "A", "A", "8"}, 21}, // 三张 A 只留一个 11
		{[]Rank{"A", "5"}, 16},           // 软 16
		{[]Rank{"A", "5", "9"}, 15},      // 软变硬
		{[]Rank{"K", "Q", "J"}, 30},      // 无 A 可减，爆
		{[]Rank{"10", "9", "3"}, 22},     // 爆牌不可再减
	}
	for _, tc := range cases {
		if got := handOf(tc.ranks...).Score(); got != tc.want {
			t.Fatalf("score of %v: expected %d, got %d", tc.ranks, tc.want, got)
		}
	}
}

// ✅ 算分与加牌顺序无关
func TestHandScoreOrderInvariant(t *testing.T) {
	a := handOf("A", "9", "5").Score()
	b := handOf("5", "A", "9").Score()
	c := handOf("9", "5", "A").Score()
	if a != b || b != c {
		t.Fatalf("score should not depend on deal order: %d %d %d", a, b, c)
	}
}

// ✅ 天牌只认两张 21；打出来的 21 不算
func TestIsNatural(t *testing.T) {
	if !handOf("A", "K").IsNatural() {
		t.Fatalf("A+K should be a natural")
	}
	if handOf("7", "7", "7").IsNatural() {
		t.Fatalf("三张凑的 21 不是天牌")
	}
	if handOf("10", "9").IsNatural() {
		t.Fatalf("19 is not a natural")
	}
	if handOf("A").IsNatural() {
		t.Fatalf("one card cannot be a natural")
	}
}

func TestHandCardsCopy(t *testing.T) {
	h := handOf("A", "K")
	cards := h.Cards()
	cards[0] = NewCard("2", Clubs)
	if h.Cards()[0].Rank != "A" {
		t.Fatalf("Cards() must return a copy")
	}
}
