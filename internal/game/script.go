package game

import (
	"context"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

// Script is a Player that replays a fixed list of moves and then quits.
type Script struct {
	moves []board.Move
	next  int
}

// NewScript creates a scripted player.
func NewScript(moves []board.Move) *Script {
	return &Script{moves: moves}
}

func (p *Script) NextMove(ctx context.Context, _ *State) (board.Move, error) {
	if err := ctx.Err(); err != nil {
		return board.Move{}, err
	}
	if p.next >= len(p.moves) {
		return board.Move{}, ErrQuitRequested
	}
	m := p.moves[p.next]
	p.next++
	return m, nil
}

// Remaining returns how many scripted moves have not been played.
func (p *Script) Remaining() int {
	return len(p.moves) - p.next
}

// Recorder is a Presenter that keeps what it was shown, for replays and tests.
type Recorder struct {
	Shown      int
	Rejections []*board.PourRejection
	WonAfter   int
	HasWon     bool
}

func (r *Recorder) Show(*State) { r.Shown++ }

func (r *Recorder) Rejected(_ *State, rej *board.PourRejection) {
	r.Rejections = append(r.Rejections, rej)
}

func (r *Recorder) Won(s *State) {
	r.HasWon = true
	r.WonAfter = s.Moves
}
