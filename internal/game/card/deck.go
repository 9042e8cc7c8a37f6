package card

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/logger"
)

// DeckSize 一副牌的张数
const DeckSize = RankCount * SuitCount

// DeckState 牌堆状态，由剩余张数和是否洗过牌推导
type DeckState int

const (
	StateNew DeckState = iota
	StateShuffled
	StateEmpty
	StatePartial
)

var stateNames = map[DeckState]string{
	StateNew:      "NEW",
	StateShuffled: "SHUFFLED",
	StateEmpty:    "EMPTY",
	StatePartial:  "PARTIAL",
}

func (s DeckState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// deriveState 状态只由 remaining 与 shuffled 决定，不单独存储
func deriveState(remaining int, shuffled bool) DeckState {
	switch {
	case remaining == 0:
		return StateEmpty
	case remaining == DeckSize && shuffled:
		return StateShuffled
	case remaining == DeckSize:
		return StateNew
	default:
		return StatePartial
	}
}

var (
	defaultRand     *rand.Rand
	defaultRandOnce sync.Once
)

// DefaultRand 返回进程级随机数生成器，只在首次调用时播种一次
func DefaultRand() *rand.Rand {
	defaultRandOnce.Do(func() {
		seed := uint64(time.Now().UnixNano())
		defaultRand = rand.New(rand.NewPCG(seed, seed>>1|1))
	})
	return defaultRand
}

// NewSeededRand 用固定种子创建生成器，用于可复现的洗牌
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Deck 定义一副牌
//
// cards[0:remaining] 为未发出的牌，从 remaining-1 处发牌；
// remaining 之后的位置是已发出的旧数据，不可读取。
type Deck struct {
	id        uuid.UUID
	cards     [DeckSize]Card
	remaining int
	shuffled  bool
	rng       *rand.Rand
}

// NewDeck 按花色优先顺序生成 52 张牌。rng 为 nil 时使用 DefaultRand。
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = DefaultRand()
	}
	d := &Deck{id: uuid.New(), rng: rng}
	d.fill()
	return d
}

func (d *Deck) fill() {
	i := 0
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards[i] = Card{Rank: r, Suit: s}
			i++
		}
	}
	d.remaining = DeckSize
	d.shuffled = false
}

// Reset 原地重建为一副新牌，保留 ID 和生成器
func (d *Deck) Reset() {
	d.fill()
	logger.LogInfo("deck %s reset", d.id)
}

// Shuffle 对未发出的牌做 Fisher-Yates 洗牌，已发出的位置不参与
func (d *Deck) Shuffle() {
	if d.remaining < DeckSize {
		logger.LogWarn("deck %s: shuffling partial deck (%d cards remaining)", d.id, d.remaining)
	}
	if d.remaining == 0 {
		return
	}
	live := d.cards[:d.remaining]
	d.rng.Shuffle(len(live), func(i, j int) {
		live[i], live[j] = live[j], live[i]
	})
	d.shuffled = true
}

// Draw 发出一张牌。牌堆为空时返回 JokerCard 和 ErrDeckEmpty。
func (d *Deck) Draw() (Card, error) {
	if d.remaining == 0 {
		logger.LogWarn("deck %s: draw from empty deck", d.id)
		return JokerCard, apperrors.ErrDeckEmpty
	}
	d.remaining--
	return d.cards[d.remaining], nil
}

// DrawSentinel 兼容旧行为：牌堆为空时直接返回哨兵牌
func (d *Deck) DrawSentinel() Card {
	c, _ := d.Draw()
	return c
}

// ID 返回牌堆标识
func (d *Deck) ID() uuid.UUID {
	return d.id
}

// Remaining 返回剩余张数
func (d *Deck) Remaining() int {
	return d.remaining
}

// Shuffled 是否洗过牌
func (d *Deck) Shuffled() bool {
	return d.shuffled
}

// State 返回当前状态
func (d *Deck) State() DeckState {
	return deriveState(d.remaining, d.shuffled)
}

// Cards 返回未发出牌的副本，最后一张为下一张将发出的牌
func (d *Deck) Cards() []Card {
	cards := make([]Card, d.remaining)
	copy(cards, d.cards[:d.remaining])
	return cards
}

// Status 返回状态行
func (d *Deck) Status() string {
	return fmt.Sprintf("Cards remaining: %d/%d, State: %s", d.remaining, DeckSize, d.State())
}
