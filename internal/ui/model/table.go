// Package model implements the interactive table as a bubbletea model.
package model

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/game/card"
	"github.com/palemoky/five-card/internal/logger"
	"github.com/palemoky/five-card/internal/ui/common"
	"github.com/palemoky/five-card/internal/ui/view"
)

// maxLogLines caps the on-screen action log.
const maxLogLines = 6

// TableModel drives one deck and one hand from the keyboard.
type TableModel struct {
	deck     *card.Deck
	hand     *card.Hand
	loose    []card.Card
	eval     *card.Evaluation
	log      []string
	keys     KeyMap
	renderer *view.Renderer
}

// NewTableModel creates a model with a fresh deck drawn from rng.
func NewTableModel(rng *rand.Rand, renderer *view.Renderer) *TableModel {
	return &TableModel{
		deck:     card.NewDeck(rng),
		hand:     card.NewHand(),
		keys:     DefaultKeyMap(),
		renderer: renderer,
	}
}

// NewProgram sends logging to a file under logDir before the model takes over the
// terminal; an empty logDir resolves to ~/.five-card.
func NewProgram(m *TableModel, logDir string) (*tea.Program, error) {
	if err := logger.Init(logDir); err != nil {
		return nil, err
	}
	return tea.NewProgram(m, tea.WithAltScreen()), nil
}

// Deck exposes the current deck.
func (m *TableModel) Deck() *card.Deck { return m.deck }

// Hand exposes the current hand.
func (m *TableModel) Hand() *card.Hand { return m.hand }

// Loose returns the cards drawn outside the hand.
func (m *TableModel) Loose() []card.Card { return m.loose }

// Evaluation returns the last evaluation, nil if none yet.
func (m *TableModel) Evaluation() *card.Evaluation { return m.eval }

// Log returns the action log, newest last.
func (m *TableModel) Log() []string { return m.log }

func (m *TableModel) Init() tea.Cmd {
	return nil
}

func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Shuffle):
		m.deck.Shuffle()
		m.push("Shuffled. " + m.deck.Status())
	case key.Matches(keyMsg, m.keys.Draw):
		c, err := m.deck.Draw()
		if err != nil {
			m.pushErr(err)
			break
		}
		m.loose = append(m.loose, c)
		m.push(m.renderer.Drew(c))
	case key.Matches(keyMsg, m.keys.AddCard):
		c, err := m.hand.AddCard(m.deck)
		if err != nil {
			m.pushErr(err)
			break
		}
		m.eval = nil
		m.push(fmt.Sprintf("%s (cards in hand = %d)", m.renderer.Drew(c), m.hand.Len()))
	case key.Matches(keyMsg, m.keys.Evaluate):
		ev, err := m.hand.Evaluate()
		if err != nil {
			m.pushErr(err)
			break
		}
		m.eval = &ev
		m.push("Evaluated hand")
	case key.Matches(keyMsg, m.keys.Reset):
		m.deck.Reset()
		m.hand = card.NewHand()
		m.loose = nil
		m.eval = nil
		m.push("New deck. " + m.deck.Status())
	}
	return m, nil
}

func (m *TableModel) push(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *TableModel) pushErr(err error) {
	if errors.Is(err, apperrors.ErrDeckEmpty) {
		m.push(m.renderer.Error(fmt.Errorf("%w, returning %s", err, card.JokerCard)))
		return
	}
	m.push(m.renderer.Error(err))
}

func (m *TableModel) helpLine() string {
	var parts []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *TableModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderer.Status(m.deck))
	sb.WriteString("\n")
	if len(m.loose) > 0 {
		drawn := make([]string, len(m.loose))
		for i, c := range m.loose {
			drawn[i] = m.renderer.Card(c)
		}
		fmt.Fprintf(&sb, "Loose: %s\n", strings.Join(drawn, " "))
	}

	handView := m.renderer.Hand(m.hand.Cards())
	if m.eval != nil {
		handView = lipgloss.JoinHorizontal(lipgloss.Top, handView, "  ", common.BoxStyle.Render(m.renderer.Evaluation(*m.eval)))
	}
	sb.WriteString(handView)
	sb.WriteString("\n")

	for _, line := range m.log {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(common.PromptStyle.Render(m.helpLine()))
	return sb.String()
}
