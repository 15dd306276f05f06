// Package orchestrator wires the rules engine and a search strategy into a
// single playable game: reset, move, takeback and "let the strategy pick a
// move" as one coordinated, mutex-guarded unit.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/board/fen"
	"github.com/tmcgann/plychess/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Orchestrator owns one game in progress: the position and the strategy
// that plays it.
type Orchestrator struct {
	name, author string

	strategy search.Strategy

	gs *board.GameState
	mu sync.Mutex
}

// Option is an Orchestrator creation option.
type Option func(*Orchestrator)

// WithStrategy overrides the default Random strategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Orchestrator) {
		o.strategy = s
	}
}

// New returns an Orchestrator at the initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		name:     name,
		author:   author,
		strategy: search.NewRandom(0),
		gs:       board.NewGameState(),
	}
	for _, fn := range opts {
		fn(o)
	}

	logw.Infof(ctx, "Initialized orchestrator: %v", o.Name())
	return o
}

// Name returns the orchestrator name and version.
func (o *Orchestrator) Name() string {
	return fmt.Sprintf("%v %v", o.name, version)
}

// Author returns the author.
func (o *Orchestrator) Author() string {
	return o.author
}

// SetStrategy swaps the active strategy.
func (o *Orchestrator) SetStrategy(s search.Strategy) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.strategy = s
}

// State returns the live GameState. Callers must not mutate it concurrently
// with Move/TakeBack/Play.
func (o *Orchestrator) State() *board.GameState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.gs
}

// Position returns the current position in FEN notation.
func (o *Orchestrator) Position() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return fen.Encode(o.gs)
}

// Reset resets to a new starting position in FEN notation.
func (o *Orchestrator) Reset(ctx context.Context, position string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	gs, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	o.gs = gs

	logw.Infof(ctx, "Reset %v", position)
	return nil
}

// Move applies the move identified by its algebraic squares, e.g. "E2E4".
// The candidate must be one of the position's legal moves.
func (o *Orchestrator) Move(ctx context.Context, move string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, m := range o.gs.ValidMoves {
		if board.ChessNotation(m) == move {
			o.gs.MakeMove(m)
			o.gs.GenerateLegalMoves()

			logw.Infof(ctx, "Move %v: check=%v, checkmate=%v, stalemate=%v", m, o.gs.InCheck, o.gs.CheckMate, o.gs.StaleMate)
			return nil
		}
	}
	return fmt.Errorf("illegal move: %v", move)
}

// TakeBack undoes the latest move.
func (o *Orchestrator) TakeBack(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.gs.MoveLog) == 0 {
		return fmt.Errorf("no move to take back")
	}

	m := o.gs.MoveLog[len(o.gs.MoveLog)-1]
	o.gs.UndoMove()
	o.gs.GenerateLegalMoves()

	logw.Infof(ctx, "Takeback %v", m)
	return nil
}

// Play asks the active strategy to select and apply the next move, and
// returns it. Play returns an error rather than calling the strategy if the
// game has already ended.
func (o *Orchestrator) Play(ctx context.Context) (board.Move, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.gs.CheckMate || o.gs.StaleMate {
		return board.Move{}, fmt.Errorf("game has ended: checkmate=%v, stalemate=%v", o.gs.CheckMate, o.gs.StaleMate)
	}

	m, err := o.strategy.FindMove(ctx, o.gs)
	if err != nil {
		return board.Move{}, fmt.Errorf("strategy failed to find a move: %w", err)
	}

	o.gs.MakeMove(m)
	o.gs.GenerateLegalMoves()

	logw.Infof(ctx, "Play %v: check=%v, checkmate=%v, stalemate=%v", m, o.gs.InCheck, o.gs.CheckMate, o.gs.StaleMate)
	return m, nil
}
