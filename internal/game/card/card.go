package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/five-card/internal/apperrors"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Card 定义一张牌
type Card struct {
	Rank Rank
	Suit Suit
}

const (
	Spade     Suit = iota // 黑桃
	Heart                 // 红心
	Diamond               // 方块
	Club                  // 梅花
	SuitJoker             // 王牌（哨兵）
)

type suitInfo struct {
	symbol string
	name   string
}

// suitTable 花色符号与名称映射表
var suitTable = map[Suit]suitInfo{
	Spade:     {"♠", "Spades"},
	Heart:     {"♥", "Hearts"},
	Diamond:   {"♦", "Diamonds"},
	Club:      {"♣", "Clubs"},
	SuitJoker: {"★", "Joker"},
}

// Symbol 返回花色符号
func (s Suit) Symbol() string {
	return suitTable[s].symbol
}

// Name 返回花色名称
func (s Suit) Name() string {
	if info, ok := suitTable[s]; ok {
		return info.name
	}
	return "Unknown"
}

func (s Suit) String() string {
	return s.Symbol()
}

// IsRed 红心和方块为红色
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

const (
	RankJoker Rank = 0 // 哨兵点数
)

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankJoker: "Joker",
	RankJ:     "J",
	RankQ:     "Q",
	RankK:     "K",
	RankA:     "A",
}

// Value 返回点数数值，2-14，哨兵为 0
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Ranks 返回 13 个标准点数（升序）
func Ranks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for r := Rank2; r <= RankA; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits 返回 4 个标准花色
func Suits() []Suit {
	return []Suit{Spade, Heart, Diamond, Club}
}

const (
	RankCount = 13
	SuitCount = 4
)

// JokerCard 牌堆耗尽时的哨兵牌
var JokerCard = Card{Rank: RankJoker, Suit: SuitJoker}

// IsJoker 是否为哨兵牌
func (c Card) IsJoker() bool {
	return c.Rank == RankJoker
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[string]Rank{
	"2": Rank2, "3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
	"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10, "T": Rank10,
	"J": RankJ, "Q": RankQ, "K": RankK, "A": RankA,
}

// charToSuit 同时支持符号和字母
var charToSuit = map[string]Suit{
	"♠": Spade, "S": Spade,
	"♥": Heart, "H": Heart,
	"♦": Diamond, "D": Diamond,
	"♣": Club, "C": Club,
}

// ParseCard 解析 "A♠"、"As"、"10h"、"Td" 形式的牌
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCard, s)
	}

	suitStr := strings.ToUpper(string(runes[len(runes)-1]))
	suit, ok := charToSuit[suitStr]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", apperrors.ErrInvalidCard, s)
	}

	rankStr := strings.ToUpper(string(runes[:len(runes)-1]))
	rank, ok := charToRank[rankStr]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", apperrors.ErrInvalidCard, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards 解析以空白或逗号分隔的多张牌
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
