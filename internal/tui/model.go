// Package tui is the interactive bubbletea front end.
//
// Keys: digits pick a flask (Enter commits when there are ten or more
// flasks), Backspace edits, Esc cancels a selection, q or Ctrl+C quits.
// The first pick is the source and the second the destination.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/game"
	"github.com/MuhammadZain2005/Flask-Filler/internal/render"
)

// Model is the bubbletea model for one game.
type Model struct {
	state    *game.State
	renderer *render.Renderer
	logger   *zap.Logger

	source int    // chosen source flask, or game.NoFlask
	input  string // digits typed so far
	status string
	err    error
	quit   bool
}

// New creates a model over s. A nil logger disables logging.
func New(s *game.State, r *render.Renderer, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		state:    s,
		renderer: r,
		logger:   logger,
		source:   game.NoFlask,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state.Won() {
		return m, tea.Quit
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.source, m.input, m.status = game.NoFlask, "", ""
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyEnter:
		m = m.commit()
	case tea.KeyRunes:
		for _, r := range key.Runes {
			switch {
			case r == 'q' || r == 'Q':
				m.quit = true
				return m, tea.Quit
			case r >= '0' && r <= '9':
				m.input += string(r)
				if len(m.state.Flasks) < 10 {
					m = m.commit()
				}
			}
		}
	}

	if m.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

// commit turns the typed digits into a flask pick.
func (m Model) commit() Model {
	input := m.input
	m.input = ""
	if input == "" {
		return m
	}

	idx, err := game.ParseFlaskNumber(input, len(m.state.Flasks))
	if err != nil {
		m.status = "Invalid Input. Try Again"
		return m
	}
	if m.source == game.NoFlask {
		m.source = idx
		m.status = ""
		return m
	}

	move := board.Move{Source: m.source, Dest: idx}
	m.source = game.NoFlask

	err = m.state.Apply(move)
	var rej *board.PourRejection
	switch {
	case errors.As(err, &rej):
		m.logger.Info("pour rejected", zap.Stringer("move", move), zap.Stringer("reason", rej.Reason))
		m.status = rej.Error()
	case err != nil:
		m.err = fmt.Errorf("applying move %s: %w", move, err)
	default:
		m.logger.Debug("pour", zap.Stringer("move", move), zap.Int("moves", m.state.Moves))
		m.status = ""
		if m.state.Won() {
			m.logger.Info("puzzle solved", zap.Int("moves", m.state.Moves))
		}
	}
	return m
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderer.Title())
	sb.WriteString("\n\n")

	src, dst := m.state.LastSource, m.state.LastDest
	if m.source != game.NoFlask {
		src, dst = m.source, game.NoFlask
	}
	if m.state.Won() {
		src, dst = game.NoFlask, game.NoFlask
	}
	sb.WriteString(m.renderer.Flasks(m.state.Flasks, src, dst))
	sb.WriteByte('\n')

	switch {
	case m.state.Won():
		sb.WriteString(m.renderer.Success("You win!"))
		sb.WriteString("\npress any key to exit\n")
		return sb.String()
	case m.status != "":
		sb.WriteString(m.renderer.Warning(m.status))
		sb.WriteByte('\n')
	}

	if m.source == game.NoFlask {
		sb.WriteString("Select Source Flask: " + m.input)
	} else {
		sb.WriteString("Source " + strconv.Itoa(m.source+1) + ". Select Destination Flask: " + m.input)
	}
	sb.WriteString("\n(q to quit)\n")
	return sb.String()
}

// Result reports how the game ended.
func (m Model) Result() game.Result {
	res := game.Result{Moves: m.state.Moves, Outcome: game.OutcomeQuit}
	if m.state.Won() {
		res.Outcome = game.OutcomeWon
	}
	return res
}

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts a bubbletea program over s and blocks until it exits.
func Run(s *game.State, r *render.Renderer, logger *zap.Logger, opts ...tea.ProgramOption) (game.Result, error) {
	final, err := tea.NewProgram(New(s, r, logger), opts...).Run()
	if err != nil {
		return game.Result{Moves: s.Moves}, fmt.Errorf("running terminal UI: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return game.Result{Moves: s.Moves}, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Err() != nil {
		return m.Result(), m.Err()
	}
	return m.Result(), nil
}
