package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/game/card"
	"github.com/palemoky/five-card/internal/ui/view"
)

func newTestGame(buf *bytes.Buffer) *Game {
	return NewGame(card.NewSeededRand(2024), buf, view.NewRenderer(false, 4))
}

func TestGame_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	g := newTestGame(&buf)

	require.NoError(t, g.Run(5))

	out := buf.String()
	assert.Contains(t, out, "Cards remaining: 52/52, State: NEW")
	assert.Contains(t, out, "Cards remaining: 52/52, State: SHUFFLED")
	assert.Contains(t, out, "Cards remaining: 47/52, State: PARTIAL")
	assert.Contains(t, out, "Cards remaining: 42/52, State: PARTIAL")
	assert.Contains(t, out, "Cards in my hand = 5")
	assert.Contains(t, out, "Straight:")
	assert.Contains(t, out, "Duplicates:")
	assert.Equal(t, 10, strings.Count(out, "Drew: "))

	assert.Len(t, g.Loose, 5)
	assert.True(t, g.Hand.Full())
	assert.Equal(t, 42, g.Deck.Remaining())
}

func TestGame_RunDeterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	require.NoError(t, newTestGame(&a).Run(5))
	require.NoError(t, newTestGame(&b).Run(5))
	assert.Equal(t, a.String(), b.String())
}

func TestGame_RunExhaustsDeck(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	g := newTestGame(&buf)

	err := g.Run(card.DeckSize - 2)
	assert.ErrorIs(t, err, apperrors.ErrDeckEmpty)
	assert.Equal(t, 2, g.Hand.Len())
	assert.Equal(t, card.StateEmpty, g.Deck.State())
	assert.Contains(t, buf.String(), "deck is empty")
}

func TestGame_DrawLooseFromEmptyDeck(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	g := newTestGame(&buf)
	for range card.DeckSize {
		g.DrawLoose()
	}

	c := g.DrawLoose()
	assert.Equal(t, card.JokerCard, c)
	assert.Len(t, g.Loose, card.DeckSize)
	assert.Contains(t, buf.String(), "deck is empty, returning Joker★")
	assert.Equal(t, 0, g.Deck.Remaining())
	assert.Equal(t, card.StateEmpty, g.Deck.State())
}

func TestEvaluateCards(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseCards("A♠ A♥ A♦ A♣ 10♠")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EvaluateCards(&buf, view.NewRenderer(false, 4), cards))

	out := buf.String()
	assert.Contains(t, out, "Duplicates: 4")
	assert.Contains(t, out, "Straight:   no")
	assert.Contains(t, out, "Sum:        66")
}

func TestEvaluateCards_Incomplete(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseCards("A♠ K♠")
	require.NoError(t, err)

	err = EvaluateCards(&bytes.Buffer{}, view.NewRenderer(false, 4), cards)
	assert.ErrorIs(t, err, apperrors.ErrHandIncomplete)
}
