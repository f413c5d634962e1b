package game

import (
	"context"
	"sync"

	"github.com/notnil/chess"

	"github.com/balaramesht/chess-Game/pkg/engine"
)

// SearchOutcome is what a finished background search hands back to the
// control loop.
type SearchOutcome struct {
	Move  *chess.Move
	Score float64
	Depth int
	Side  chess.Color
}

// Scheduler runs one engine decision at a time on a background goroutine
// and hands the result back through a single-slot mailbox. The mutex
// guards both the in-flight flag and the slot, so starting a computation
// and publishing or consuming a result are atomic read-modify-writes.
//
// MaybeStartTurn and DrainAndApply are called from the control-loop
// goroutine once per tick; the worker only ever touches the mailbox.
type Scheduler struct {
	mu       sync.Mutex
	inFlight bool
	pending  *SearchOutcome
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// MaybeStartTurn starts a background search for the side to move. It is a
// no-op while a computation is in flight or an outcome is waiting to be
// drained, when the side to move is not engine-controlled, and when the
// game is over. Reports whether a computation was started.
func (s *Scheduler) MaybeStartTurn(session *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight || s.pending != nil {
		return false
	}
	if session.Terminal() || !session.EngineToMove() {
		return false
	}
	var pos, err = session.Snapshot()
	if err != nil {
		return false
	}
	var side = session.Turn()
	var cfg = session.Side(side).Search
	s.inFlight = true
	go s.think(pos, side, cfg)
	return true
}

func (s *Scheduler) think(pos *chess.Position, side chess.Color, cfg SearchConfig) {
	var eng = engine.NewEngine(engine.Options{
		MaxDepth: cfg.MaxDepth,
		MoveTime: cfg.MoveTime,
	})
	var info = eng.ChooseMove(context.Background(), pos)
	s.mu.Lock()
	s.pending = &SearchOutcome{
		Move:  info.Move,
		Score: info.Score,
		Depth: info.Depth,
		Side:  side,
	}
	s.inFlight = false
	s.mu.Unlock()
}

// DrainAndApply consumes the pending outcome, if any, and applies its move
// to the canonical game after revalidating legality. A move that went
// stale through an undo, reset or assignment change since the computation
// started is discarded silently. The slot is cleared either way. Reports
// whether a move was applied.
func (s *Scheduler) DrainAndApply(session *Session) bool {
	s.mu.Lock()
	var outcome = s.pending
	s.pending = nil
	s.mu.Unlock()
	if outcome == nil || outcome.Move == nil {
		return false
	}
	return session.applyIfLegal(outcome.Move)
}

// Thinking reports whether a computation is in flight or an unconsumed
// outcome is waiting.
func (s *Scheduler) Thinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight || s.pending != nil
}

// HasPending reports whether an outcome is waiting to be drained.
func (s *Scheduler) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}
