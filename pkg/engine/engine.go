package engine

import (
	"context"
	"time"

	"github.com/notnil/chess"
)

const (
	MinDepth = 1
	MaxDepth = 5
)

// Options are fixed for the duration of one ChooseMove call and may change
// between calls.
type Options struct {
	MaxDepth int
	MoveTime time.Duration
}

type SearchInfo struct {
	// Move is nil when the root position has no legal moves.
	Move  *chess.Move
	Score float64
	Depth int
	Nodes int64
	Time  time.Duration
}

// Engine selects a move for the side to move by iterative-deepening
// alpha-beta search. Positions in notnil/chess are immutable, so child
// nodes are derived with Position.Update instead of make/unmove; the cost
// is one position copy per node, the benefit is that the caller's position
// is never touched.
//
// An Engine is not safe for concurrent use. The scheduler runs at most one
// search per Engine at a time.
type Engine struct {
	options Options
	nodes   int64
	noPrune bool
}

func NewEngine(options Options) *Engine {
	if options.MaxDepth < MinDepth {
		options.MaxDepth = MinDepth
	}
	if options.MaxDepth > MaxDepth {
		options.MaxDepth = MaxDepth
	}
	if options.MoveTime <= 0 {
		options.MoveTime = 3 * time.Second
	}
	return &Engine{options: options}
}

// ChooseMove runs iterative deepening over depths 1..MaxDepth with an
// absolute deadline computed once at entry. The result of each iteration
// replaces the previous one even when the iteration was cut short by the
// deadline, so a truncated deep iteration wins over a completed shallow
// one.
func (e *Engine) ChooseMove(ctx context.Context, pos *chess.Position) SearchInfo {
	var start = time.Now()
	var deadline = start.Add(e.options.MoveTime)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	e.nodes = 0

	var result SearchInfo
	for depth := 1; depth <= e.options.MaxDepth; depth++ {
		var score, move = e.alphaBeta(pos, depth, negInfinity, posInfinity, deadline)
		if move != nil {
			result.Move = move
			result.Score = score
			result.Depth = depth
		}
		if !time.Now().Before(deadline) || ctx.Err() != nil {
			break
		}
	}
	result.Nodes = e.nodes
	result.Time = time.Since(start)
	return result
}
