// Package view provides rendering functions for decks, hands and evaluations.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/five-card/internal/game/card"
	"github.com/palemoky/five-card/internal/ui/common"
)

// Renderer formats core data for the console. With Color off it emits plain text.
type Renderer struct {
	Color   bool
	Columns int
}

// NewRenderer returns a renderer; columns <= 0 falls back to 4.
func NewRenderer(color bool, columns int) *Renderer {
	if columns <= 0 {
		columns = 4
	}
	return &Renderer{Color: color, Columns: columns}
}

func (r *Renderer) styleFor(c card.Card) lipgloss.Style {
	switch {
	case c.IsJoker():
		return common.JokerStyle
	case c.Suit.IsRed():
		return common.RedStyle
	default:
		return common.BlackStyle
	}
}

func (r *Renderer) paint(c card.Card, text string) string {
	if !r.Color {
		return text
	}
	return r.styleFor(c).Render(text)
}

func (r *Renderer) title(s string) string {
	if !r.Color {
		return s
	}
	return common.TitleStyle(s)
}

// Card renders a single card, e.g. "10♠".
func (r *Renderer) Card(c card.Card) string {
	return r.paint(c, c.String())
}

// Deck lists cards in rows of Columns, tab separated, rank right-aligned to two places.
func (r *Renderer) Deck(cards []card.Card) string {
	var sb strings.Builder
	for i, c := range cards {
		sb.WriteString(r.paint(c, fmt.Sprintf("%2s%s", c.Rank.String(), c.Suit.Symbol())))
		if (i+1)%r.Columns == 0 || i == len(cards)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("\t")
		}
	}
	return sb.String()
}

// Status renders the deck status line.
func (r *Renderer) Status(d *card.Deck) string {
	return r.title(d.Status())
}

// Drew announces a drawn card.
func (r *Renderer) Drew(c card.Card) string {
	return "Drew: " + r.Card(c)
}

// Hand renders the hand as a boxed row.
func (r *Renderer) Hand(cards []card.Card) string {
	if len(cards) == 0 {
		return common.BoxStyle.Render("(empty hand)")
	}

	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.paint(c, common.Pad(c.String(), 3))
	}
	title := fmt.Sprintf("Hand (%d/%d)", len(cards), card.HandSize)
	return common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, r.title(title), strings.Join(parts, " ")))
}

// Evaluation renders the feature checks of a full hand.
func (r *Renderer) Evaluation(ev card.Evaluation) string {
	lines := []string{
		"Straight:   " + r.flag(ev.Straight),
		"Flush:      " + r.flag(ev.Flush),
		fmt.Sprintf("Duplicates: %d", ev.Duplicates),
		fmt.Sprintf("Sum:        %d", ev.Sum),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) flag(b bool) string {
	s := common.YesNo(b)
	if r.Color && b {
		return common.GoodStyle.Render(s)
	}
	return s
}

// Error renders an error message.
func (r *Renderer) Error(err error) string {
	msg := "⚠️ " + err.Error()
	if !r.Color {
		return msg
	}
	return common.ErrorStyle.Render(msg)
}
