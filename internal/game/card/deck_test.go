package card

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/five-card/internal/apperrors"
)

// assertStateDerived 状态必须等于 deriveState(remaining, shuffled)
func assertStateDerived(t *testing.T, d *Deck) {
	t.Helper()
	assert.Equal(t, deriveState(d.Remaining(), d.Shuffled()), d.State())
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	cards := d.Cards()

	require.Len(t, cards, DeckSize)
	assert.Equal(t, DeckSize, d.Remaining())
	assert.Equal(t, StateNew, d.State())
	assert.NotEqual(t, uuid.Nil, d.ID())

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range Suits() {
		for _, r := range Ranks() {
			assert.True(t, seen[Card{Rank: r, Suit: s}], "missing %s%s", r, s)
		}
	}
}

func TestNewDeck_SuitMajorOrder(t *testing.T) {
	t.Parallel()

	cards := NewDeck(NewSeededRand(1)).Cards()

	assert.Equal(t, Card{Rank: Rank2, Suit: Spade}, cards[0])
	assert.Equal(t, Card{Rank: RankA, Suit: Spade}, cards[12])
	assert.Equal(t, Card{Rank: Rank2, Suit: Heart}, cards[13])
	assert.Equal(t, Card{Rank: RankA, Suit: Club}, cards[51])
}

func TestNewDeck_NilRandUsesDefault(t *testing.T) {
	t.Parallel()

	d := NewDeck(nil)
	assert.Same(t, DefaultRand(), d.rng)
	d.Shuffle()
	assert.Equal(t, StateShuffled, d.State())
}

func TestDeck_ShufflePreservesCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(7))
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()

	assert.Equal(t, DeckSize, d.Remaining())
	assert.Equal(t, StateShuffled, d.State())
	assert.ElementsMatch(t, before, after)
	assert.NotEqual(t, before, after)
}

func TestDeck_ShuffleDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewDeck(NewSeededRand(42))
	b := NewDeck(NewSeededRand(42))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())

	c := NewDeck(NewSeededRand(43))
	c.Shuffle()
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestDeck_DrawAllInReverseOrder(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(3))
	d.Shuffle()
	order := d.Cards()

	drawn := make([]Card, 0, DeckSize)
	for range DeckSize {
		c, err := d.Draw()
		require.NoError(t, err)
		drawn = append(drawn, c)
		assertStateDerived(t, d)
	}

	slices.Reverse(order)
	assert.Equal(t, order, drawn)
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, StateEmpty, d.State())
}

func TestDeck_DrawStateTransitions(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	_, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, StatePartial, d.State())
	assert.Equal(t, DeckSize-1, d.Remaining())

	for d.Remaining() > 1 {
		_, err = d.Draw()
		require.NoError(t, err)
		assert.Equal(t, StatePartial, d.State())
	}

	_, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, d.State())
}

func TestDeck_DrawFromEmpty(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	for range DeckSize {
		d.DrawSentinel()
	}

	c, err := d.Draw()
	assert.ErrorIs(t, err, apperrors.ErrDeckEmpty)
	assert.Equal(t, JokerCard, c)
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, StateEmpty, d.State())

	assert.Equal(t, JokerCard, d.DrawSentinel())
	assert.Equal(t, 0, d.Remaining())
}

func TestDeck_ShufflePartialOnlyPermutesLivePrefix(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(9))
	for range 5 {
		d.DrawSentinel()
	}
	live := d.Cards()
	stale := slices.Clone(d.cards[d.remaining:])

	d.Shuffle()

	assert.Equal(t, DeckSize-5, d.Remaining())
	assert.Equal(t, StatePartial, d.State())
	assert.ElementsMatch(t, live, d.Cards())
	assert.Equal(t, stale, d.cards[d.remaining:])
	assertStateDerived(t, d)
}

func TestDeck_ShuffleEmptyStaysEmpty(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	for range DeckSize {
		d.DrawSentinel()
	}

	d.Shuffle()

	assert.Equal(t, StateEmpty, d.State())
	assert.Equal(t, 0, d.Remaining())
	assertStateDerived(t, d)
}

func TestDeck_Reset(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	id := d.ID()
	d.Shuffle()
	for range 10 {
		d.DrawSentinel()
	}

	d.Reset()

	assert.Equal(t, id, d.ID())
	assert.Equal(t, DeckSize, d.Remaining())
	assert.Equal(t, StateNew, d.State())
	assert.Equal(t, NewDeck(nil).Cards(), d.Cards())
}

func TestDeck_Status(t *testing.T) {
	t.Parallel()

	d := NewDeck(NewSeededRand(1))
	assert.Equal(t, "Cards remaining: 52/52, State: NEW", d.Status())

	d.Shuffle()
	assert.Equal(t, "Cards remaining: 52/52, State: SHUFFLED", d.Status())

	d.DrawSentinel()
	assert.Equal(t, "Cards remaining: 51/52, State: PARTIAL", d.Status())
}

func TestDeckState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NEW", StateNew.String())
	assert.Equal(t, "SHUFFLED", StateShuffled.String())
	assert.Equal(t, "EMPTY", StateEmpty.String())
	assert.Equal(t, "PARTIAL", StatePartial.String())
	assert.Equal(t, "UNKNOWN", DeckState(99).String())
}

func TestDeriveState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining int
		shuffled  bool
		expected  DeckState
	}{
		{"fresh", DeckSize, false, StateNew},
		{"shuffled full", DeckSize, true, StateShuffled},
		{"partial", 30, true, StatePartial},
		{"partial unshuffled", 1, false, StatePartial},
		{"empty", 0, true, StateEmpty},
		{"empty unshuffled", 0, false, StateEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, deriveState(tt.remaining, tt.shuffled))
		})
	}
}
