package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

// Player chooses the next pour. Returning ErrQuitRequested ends the game.
type Player interface {
	NextMove(ctx context.Context, s *State) (board.Move, error)
}

// Presenter displays the game. The loop never formats output itself.
type Presenter interface {
	Show(s *State)
	Rejected(s *State, r *board.PourRejection)
	Won(s *State)
}

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeWon Outcome = iota + 1
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result summarises a finished game.
type Result struct {
	Outcome Outcome
	Moves   int
}

// Loop drives a State with a Player until the puzzle is won or the
// player quits.
type Loop struct {
	player    Player
	presenter Presenter
	logger    *zap.Logger
}

// NewLoop wires a loop. A nil logger disables logging.
func NewLoop(player Player, presenter Presenter, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{player: player, presenter: presenter, logger: logger}
}

// Run plays s to completion. Errors other than pour rejections and quit
// requests are returned as fatal.
func (l *Loop) Run(ctx context.Context, s *State) (Result, error) {
	for !s.Won() {
		l.presenter.Show(s)

		m, err := l.player.NextMove(ctx, s)
		if errors.Is(err, ErrQuitRequested) {
			l.logger.Info("player quit", zap.Int("moves", s.Moves))
			return Result{Outcome: OutcomeQuit, Moves: s.Moves}, nil
		}
		if err != nil {
			return Result{Moves: s.Moves}, fmt.Errorf("reading move: %w", err)
		}

		err = s.Apply(m)
		var rej *board.PourRejection
		switch {
		case errors.As(err, &rej):
			l.logger.Info("pour rejected",
				zap.Stringer("move", m),
				zap.Stringer("reason", rej.Reason))
			l.presenter.Rejected(s, rej)
		case err != nil:
			return Result{Moves: s.Moves}, fmt.Errorf("applying move %s: %w", m, err)
		default:
			l.logger.Debug("pour", zap.Stringer("move", m), zap.Int("moves", s.Moves))
		}
	}

	l.logger.Info("puzzle solved", zap.Int("moves", s.Moves))
	l.presenter.Won(s)
	return Result{Outcome: OutcomeWon, Moves: s.Moves}, nil
}
