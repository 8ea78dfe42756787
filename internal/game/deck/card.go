package deck

import (
	"fmt"
	"strconv"
)

// Suit / Rank 用字符串常量，Code 与前端卡牌图片 API 的编码一致
type Suit string

type Rank string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card 不可变：构造时就算好 Code
type Card struct {
	Rank Rank   `json:"rank"`
	Suit Suit   `json:"suit"`
	Code string `json:"code"`
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, Code: cardCode(rank, suit)}
}

// Value A 记 11（软点数在 Hand.Score 里再调整），JQK 记 10
func (c Card) Value() int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		return 11
	}
	n, _ := strconv.Atoi(string(c.Rank))
	return n
}

func (c Card) String() string {
	symbols := map[Suit]string{
		Spades:   "♠",
		Hearts:   "♥",
		Diamonds: "♦",
		Clubs:    "♣",
	}
	return fmt.Sprintf("%s%s", c.Rank, symbols[c.Suit])
}

// cardCode 例: A+Spades -> "AS", 10+Hearts -> "0H"
func cardCode(rank Rank, suit Suit) string {
	r := string(rank)
	if rank == "10" {
		r = "0"
	}
	return r + string(suit[0])
}
