package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/game/card"
	"github.com/palemoky/five-card/internal/logger"
	"github.com/palemoky/five-card/internal/ui/view"
)

// Game 一副牌和一手牌的演示流程
type Game struct {
	Deck  *card.Deck
	Hand  *card.Hand
	Loose []card.Card

	out      io.Writer
	renderer *view.Renderer
}

// NewGame 创建演示流程，rng 为 nil 时使用进程级生成器
func NewGame(rng *rand.Rand, out io.Writer, renderer *view.Renderer) *Game {
	return &Game{
		Deck:     card.NewDeck(rng),
		Hand:     card.NewHand(),
		out:      out,
		renderer: renderer,
	}
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

// Run 依次执行：列出新牌 → 洗牌 → 单独发 looseDraws 张 → 抓满一手 → 排序并评估
func (g *Game) Run(looseDraws int) error {
	logger.LogInfo("demo start, deck %s", g.Deck.ID())

	g.printf("Initial deck:\n%s", g.renderer.Deck(g.Deck.Cards()))
	g.printf("%s\n", g.renderer.Status(g.Deck))

	g.Deck.Shuffle()
	g.printf("\nAfter shuffling:\n%s", g.renderer.Deck(g.Deck.Cards()))
	g.printf("%s\n", g.renderer.Status(g.Deck))

	g.printf("\nDrawing %d cards:\n", looseDraws)
	for range looseDraws {
		g.DrawLoose()
	}
	g.printf("%s\n", g.renderer.Status(g.Deck))

	g.printf("\nDrawing %d cards into hand:\n", card.HandSize)
	if err := g.FillHand(); err != nil {
		return err
	}
	g.printf("%s\n", g.renderer.Status(g.Deck))

	g.printf("\n")
	return g.Evaluate()
}

// DrawLoose 单独发一张牌；牌堆为空时打印提示并返回哨兵牌
func (g *Game) DrawLoose() card.Card {
	c := g.Deck.DrawSentinel()
	if c.IsJoker() {
		g.printf("%s\n", g.renderer.Error(fmt.Errorf("%w, returning %s", apperrors.ErrDeckEmpty, c)))
		return c
	}
	g.Loose = append(g.Loose, c)
	g.printf("%s\n", g.renderer.Drew(c))
	return c
}

// FillHand 抓牌直到手牌满或牌堆耗尽
func (g *Game) FillHand() error {
	for !g.Hand.Full() {
		c, err := g.Hand.AddCard(g.Deck)
		if err != nil {
			g.printf("%s\n", g.renderer.Error(err))
			if errors.Is(err, apperrors.ErrDeckEmpty) {
				return err
			}
			return nil
		}
		g.printf("%s\n", g.renderer.Drew(c))
		g.printf("Cards in my hand = %d\n", g.Hand.Len())
	}
	return nil
}

// Evaluate 排序并打印手牌特征
func (g *Game) Evaluate() error {
	ev, err := g.Hand.Evaluate()
	if err != nil {
		logger.LogError("evaluate hand: %v", err)
		return err
	}
	g.printf("%s\n%s\n", g.renderer.Hand(g.Hand.Cards()), g.renderer.Evaluation(ev))
	return nil
}

// EvaluateCards 评估给定的五张牌，不涉及牌堆
func EvaluateCards(out io.Writer, renderer *view.Renderer, cards []card.Card) error {
	h, err := card.NewHandOf(cards...)
	if err != nil {
		return err
	}
	g := &Game{Hand: h, out: out, renderer: renderer}
	return g.Evaluate()
}
