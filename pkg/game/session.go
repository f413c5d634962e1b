package game

import (
	"errors"
	"time"

	"github.com/notnil/chess"

	"github.com/balaramesht/chess-Game/pkg/engine"
)

var ErrNotHumanTurn = errors.New("not a human turn")

// SearchConfig bounds one engine decision.
type SearchConfig struct {
	MaxDepth int
	MoveTime time.Duration
}

// SideConfig assigns a side to a human or to the engine and carries the
// search settings used when the engine plays that side.
type SideConfig struct {
	Human  bool
	Search SearchConfig
}

// Session owns the canonical game. It is confined to the control-loop
// goroutine: background search workers only ever see immutable position
// snapshots taken by the scheduler, never the session itself.
type Session struct {
	game  *chess.Game
	start string
	white SideConfig
	black SideConfig
}

func NewSession(white, black SideConfig) *Session {
	return &Session{
		game:  chess.NewGame(),
		white: white,
		black: black,
	}
}

// NewSessionFEN starts a session from an arbitrary position.
func NewSessionFEN(fen string, white, black SideConfig) (*Session, error) {
	var s = &Session{start: fen, white: white, black: black}
	var game, err = s.newGame()
	if err != nil {
		return nil, err
	}
	s.game = game
	return s, nil
}

func (s *Session) newGame() (*chess.Game, error) {
	if s.start == "" {
		return chess.NewGame(), nil
	}
	var fenOption, err = chess.FEN(s.start)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(fenOption), nil
}

func (s *Session) Game() *chess.Game {
	return s.game
}

func (s *Session) Position() *chess.Position {
	return s.game.Position()
}

func (s *Session) Turn() chess.Color {
	return s.game.Position().Turn()
}

func (s *Session) Terminal() bool {
	return s.game.Outcome() != chess.NoOutcome
}

func (s *Session) Side(color chess.Color) SideConfig {
	if color == chess.White {
		return s.white
	}
	return s.black
}

func (s *Session) SetSide(color chess.Color, cfg SideConfig) {
	cfg.Search.MaxDepth = clampDepth(cfg.Search.MaxDepth)
	if color == chess.White {
		s.white = cfg
	} else {
		s.black = cfg
	}
}

func (s *Session) SetHuman(color chess.Color, human bool) {
	var cfg = s.Side(color)
	cfg.Human = human
	s.SetSide(color, cfg)
}

// SetDepth applies a new search depth to both sides, clamped to the
// engine's supported range.
func (s *Session) SetDepth(depth int) {
	depth = clampDepth(depth)
	s.white.Search.MaxDepth = depth
	s.black.Search.MaxDepth = depth
}

func (s *Session) EngineToMove() bool {
	return !s.Side(s.Turn()).Human
}

// ApplyHumanMove decodes text in UCI or algebraic form and applies it.
// A four-character UCI move onto the last rank retries with a queen
// promotion appended, matching how a pointing device enters promotions.
func (s *Session) ApplyHumanMove(text string) error {
	if !s.Side(s.Turn()).Human {
		return ErrNotHumanTurn
	}
	var pos = s.game.Position()
	if move, err := (chess.UCINotation{}).Decode(pos, text); err == nil {
		if s.game.Move(move) == nil {
			return nil
		}
		// A bare from-to onto the promotion rank defaults to queen.
		if len(text) == 4 {
			if move, err := (chess.UCINotation{}).Decode(pos, text+"q"); err == nil {
				if s.game.Move(move) == nil {
					return nil
				}
			}
		}
	}
	var move, err = chess.AlgebraicNotation{}.Decode(pos, text)
	if err != nil {
		return err
	}
	return s.game.Move(move)
}

// Undo discards the last applied move by replaying history on a fresh
// game. Replaying keeps the rules engine's repetition and 75-move counters
// coherent, which a bare position rollback would lose.
func (s *Session) Undo() bool {
	var moves = s.game.Moves()
	if len(moves) == 0 {
		return false
	}
	var replay, err = s.newGame()
	if err != nil {
		return false
	}
	for _, move := range moves[:len(moves)-1] {
		if err := replay.Move(move); err != nil {
			return false
		}
	}
	s.game = replay
	return true
}

func (s *Session) Reset() {
	if game, err := s.newGame(); err == nil {
		s.game = game
	}
}

// Snapshot returns an independent copy of the current position for a
// background worker. notnil positions memoize their legal-move list on
// first use, so sharing the canonical pointer across goroutines would
// race; decoding through FEN yields a position with no shared state.
func (s *Session) Snapshot() (*chess.Position, error) {
	var fen, err = chess.FEN(s.game.Position().String())
	if err != nil {
		return nil, err
	}
	return chess.NewGame(fen).Position(), nil
}

// applyIfLegal applies a proposed move only if it is still a member of the
// canonical legal-move set, matching by coordinates and promotion since the
// proposal was enumerated on a snapshot.
func (s *Session) applyIfLegal(move *chess.Move) bool {
	if s.Terminal() {
		return false
	}
	for _, valid := range s.game.ValidMoves() {
		if valid.S1() == move.S1() && valid.S2() == move.S2() && valid.Promo() == move.Promo() {
			return s.game.Move(valid) == nil
		}
	}
	return false
}

func clampDepth(depth int) int {
	if depth < engine.MinDepth {
		return engine.MinDepth
	}
	if depth > engine.MaxDepth {
		return engine.MaxDepth
	}
	return depth
}
