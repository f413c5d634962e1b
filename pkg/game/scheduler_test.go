package game

import (
	"testing"
	"time"

	"github.com/notnil/chess"
)

func engineSide(depth int, moveTime time.Duration) SideConfig {
	return SideConfig{Search: SearchConfig{MaxDepth: depth, MoveTime: moveTime}}
}

func humanSide() SideConfig {
	return SideConfig{Human: true, Search: SearchConfig{MaxDepth: 1, MoveTime: time.Second}}
}

func waitForOutcome(t *testing.T, s *Scheduler) {
	t.Helper()
	var deadline = time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if s.HasPending() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for the search outcome")
}

func TestSchedulerAppliesEngineMove(t *testing.T) {
	var session = NewSession(engineSide(1, 100*time.Millisecond), humanSide())
	var scheduler = NewScheduler()

	if !scheduler.MaybeStartTurn(session) {
		t.Fatal("expected a computation to start")
	}
	waitForOutcome(t, scheduler)
	if !scheduler.DrainAndApply(session) {
		t.Fatal("expected the engine move to be applied")
	}
	if moves := session.Game().Moves(); len(moves) != 1 {
		t.Fatalf("expected 1 applied move, got %d", len(moves))
	}
	if session.Turn() != chess.Black {
		t.Errorf("expected Black to move, got %v", session.Turn())
	}
}

func TestSchedulerSingleFlight(t *testing.T) {
	// Depth 5 from the initial position cannot finish inside the budget,
	// so the first computation is still in flight for the second call.
	var session = NewSession(engineSide(5, 500*time.Millisecond), humanSide())
	var scheduler = NewScheduler()

	if !scheduler.MaybeStartTurn(session) {
		t.Fatal("expected the first computation to start")
	}
	if scheduler.MaybeStartTurn(session) {
		t.Error("second MaybeStartTurn started a computation while one was in flight")
	}
	waitForOutcome(t, scheduler)
	if scheduler.MaybeStartTurn(session) {
		t.Error("MaybeStartTurn started a computation over an undrained outcome")
	}
	scheduler.DrainAndApply(session)
}

func TestSchedulerNoStartForHumanTurn(t *testing.T) {
	var session = NewSession(humanSide(), engineSide(1, 100*time.Millisecond))
	var scheduler = NewScheduler()
	if scheduler.MaybeStartTurn(session) {
		t.Error("computation started on a human turn")
	}
}

func TestSchedulerNoStartOnTerminalGame(t *testing.T) {
	var session = NewSession(engineSide(1, 100*time.Millisecond), engineSide(1, 100*time.Millisecond))
	for _, move := range []string{"f3", "e6", "g4", "Qh4#"} {
		if err := session.Game().MoveStr(move); err != nil {
			t.Fatal(err)
		}
	}
	var scheduler = NewScheduler()
	if scheduler.MaybeStartTurn(session) {
		t.Error("computation started on a finished game")
	}
}

func TestDrainAndApplyEmptyMailbox(t *testing.T) {
	var session = NewSession(humanSide(), engineSide(1, 100*time.Millisecond))
	var scheduler = NewScheduler()
	if scheduler.DrainAndApply(session) {
		t.Error("drain of an empty mailbox reported an applied move")
	}
}

func TestSchedulerDiscardsStaleMove(t *testing.T) {
	var session = NewSession(humanSide(), engineSide(2, 300*time.Millisecond))
	var scheduler = NewScheduler()

	if err := session.ApplyHumanMove("e2e4"); err != nil {
		t.Fatal(err)
	}
	if !scheduler.MaybeStartTurn(session) {
		t.Fatal("expected a computation to start for Black")
	}

	// Rewind the canonical game while the worker is still thinking. The
	// eventual Black reply is no longer a member of the legal-move set.
	if !session.Undo() {
		t.Fatal("undo failed")
	}
	var before = session.Position().String()

	waitForOutcome(t, scheduler)
	if scheduler.DrainAndApply(session) {
		t.Error("stale move was applied")
	}
	if after := session.Position().String(); after != before {
		t.Errorf("canonical position changed:\nbefore %v\nafter  %v", before, after)
	}
	if scheduler.HasPending() {
		t.Error("mailbox not cleared after drain")
	}
}
