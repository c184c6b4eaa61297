// Package console plays the puzzle over a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/game"
	"github.com/MuhammadZain2005/Flask-Filler/internal/render"
)

// quitWord ends the game at any prompt, case-insensitively.
const quitWord = "EXIT"

// Console is both the Player and the Presenter for a game.Loop.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *render.Renderer
	clear    bool
	status   string
}

// Option configures a Console.
type Option func(*Console)

// WithClearScreen clears the terminal before each frame.
func WithClearScreen() Option {
	return func(c *Console) { c.clear = true }
}

// New creates a Console reading moves from in and drawing to out.
func New(in io.Reader, out io.Writer, renderer *render.Renderer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NextMove asks for a source and then a destination flask.
// End of input is treated as a quit.
func (c *Console) NextMove(ctx context.Context, s *game.State) (board.Move, error) {
	n := len(s.Flasks)
	src, err := c.ask(ctx, "Select Source Flask:", n)
	if err != nil {
		return board.Move{}, err
	}
	dst, err := c.ask(ctx, "Select Destination Flask:", n)
	if err != nil {
		return board.Move{}, err
	}
	return board.Move{Source: src, Dest: dst}, nil
}

// ask prompts until the player enters a number in 1..n or quits.
func (c *Console) ask(ctx context.Context, prompt string, n int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(c.out, prompt+" ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(c.out)
			return 0, game.ErrQuitRequested
		}

		input := strings.ToUpper(strings.TrimSpace(c.in.Text()))
		if input == quitWord {
			return 0, game.ErrQuitRequested
		}
		idx, err := game.ParseFlaskNumber(input, n)
		if err == nil {
			return idx, nil
		}
		fmt.Fprintln(c.out, c.renderer.Warning("Invalid Input. Try Again"))
	}
}

// Show draws the current frame, including any pending rejection.
func (c *Console) Show(s *game.State) {
	c.frame(s.Flasks, s.LastSource, s.LastDest)
	if c.status != "" {
		fmt.Fprintln(c.out, c.renderer.Warning(c.status))
		c.status = ""
	}
}

// Rejected holds the reason until the next frame.
func (c *Console) Rejected(_ *game.State, r *board.PourRejection) {
	c.status = r.Error()
}

// Won draws the final board without highlights.
func (c *Console) Won(s *game.State) {
	c.frame(s.Flasks, game.NoFlask, game.NoFlask)
	fmt.Fprintln(c.out, c.renderer.Success("You win!"))
}

func (c *Console) frame(flasks []*board.Flask, src, dst int) {
	if c.clear {
		fmt.Fprint(c.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	}
	fmt.Fprintln(c.out, c.renderer.Title())
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.renderer.Flasks(flasks, src, dst))
}
