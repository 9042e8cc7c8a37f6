package card

import (
	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/logger"
)

// HandSize 手牌上限
const HandSize = 5

// Hand 固定容量的手牌，只增不减
type Hand struct {
	cards [HandSize]Card
	count int
}

// Evaluation 一手满牌的特征
type Evaluation struct {
	Straight   bool
	Flush      bool
	Duplicates int
	Sum        int
}

// NewHand 创建空手牌
func NewHand() *Hand {
	return &Hand{}
}

// NewHandOf 用给定的牌创建手牌，超过 HandSize 返回 ErrHandFull
func NewHandOf(cards ...Card) (*Hand, error) {
	if len(cards) > HandSize {
		return nil, apperrors.ErrHandFull
	}
	h := &Hand{}
	h.count = copy(h.cards[:], cards)
	return h, nil
}

// AddCard 从牌堆抓一张牌。手牌已满时不抓牌；牌堆为空时哨兵牌不会进入手牌。
func (h *Hand) AddCard(d *Deck) (Card, error) {
	if h.Full() {
		logger.LogWarn("hand is full, ignoring draw")
		return Card{}, apperrors.ErrHandFull
	}
	c, err := d.Draw()
	if err != nil {
		return c, err
	}
	h.cards[h.count] = c
	h.count++
	return c, nil
}

// Len 返回手牌张数
func (h *Hand) Len() int {
	return h.count
}

// Full 手牌是否已满
func (h *Hand) Full() bool {
	return h.count == HandSize
}

// Cards 返回手牌副本
func (h *Hand) Cards() []Card {
	cards := make([]Card, h.count)
	copy(cards, h.cards[:h.count])
	return cards
}

func (h *Hand) requireFull() error {
	if !h.Full() {
		return apperrors.ErrHandIncomplete
	}
	return nil
}

// SortAscending 按点数升序稳定排序（插入排序），同点数保持原有花色顺序
func (h *Hand) SortAscending() error {
	if err := h.requireFull(); err != nil {
		return err
	}
	for i := 1; i < HandSize; i++ {
		for j := i; j > 0 && h.cards[j].Rank < h.cards[j-1].Rank; j-- {
			h.cards[j], h.cards[j-1] = h.cards[j-1], h.cards[j]
		}
	}
	return nil
}

// SumRanks 返回点数之和
func (h *Hand) SumRanks() (int, error) {
	if err := h.requireFull(); err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range h.cards {
		sum += c.Rank.Value()
	}
	return sum, nil
}

// IsStraight 判断顺子：排序后五张点数互不相同且首尾相差 4。A 只作最大牌。
// 会先对手牌原地排序。
func (h *Hand) IsStraight() (bool, error) {
	if err := h.SortAscending(); err != nil {
		return false, err
	}
	for i := 1; i < HandSize; i++ {
		if h.cards[i].Rank == h.cards[i-1].Rank {
			return false, nil
		}
	}
	return h.cards[HandSize-1].Rank-h.cards[0].Rank == HandSize-1, nil
}

// IsFlush 判断同花
func (h *Hand) IsFlush() (bool, error) {
	if err := h.requireFull(); err != nil {
		return false, err
	}
	for i := 1; i < HandSize; i++ {
		if h.cards[i].Suit != h.cards[0].Suit {
			return false, nil
		}
	}
	return true, nil
}

// countHandRanks 统计手牌中各 Rank 的数量
func countHandRanks(cards []Card) map[Rank]int {
	counts := make(map[Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// MaxDuplicates 返回同点数牌的最大张数：1 无对子，2 对子，3 三条，4 四条
func (h *Hand) MaxDuplicates() (int, error) {
	if err := h.requireFull(); err != nil {
		return 0, err
	}
	maxCount := 0
	for _, n := range countHandRanks(h.cards[:]) {
		maxCount = max(maxCount, n)
	}
	return maxCount, nil
}

// Evaluate 汇总所有特征，会对手牌排序
func (h *Hand) Evaluate() (Evaluation, error) {
	var ev Evaluation
	var err error
	if ev.Straight, err = h.IsStraight(); err != nil {
		return Evaluation{}, err
	}
	if ev.Flush, err = h.IsFlush(); err != nil {
		return Evaluation{}, err
	}
	if ev.Duplicates, err = h.MaxDuplicates(); err != nil {
		return Evaluation{}, err
	}
	if ev.Sum, err = h.SumRanks(); err != nil {
		return Evaluation{}, err
	}
	return ev, nil
}
