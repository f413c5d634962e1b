package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/balaramesht/chess-Game/pkg/game"
)

func thinkingConsole(t *testing.T, lines chan string) (*Console, *game.Scheduler) {
	t.Helper()
	var session = game.NewSession(
		game.SideConfig{Human: true, Search: game.SearchConfig{MaxDepth: 2, MoveTime: time.Second}},
		game.SideConfig{Human: false, Search: game.SearchConfig{MaxDepth: 5, MoveTime: 500 * time.Millisecond}},
	)
	if err := session.ApplyHumanMove("e2e4"); err != nil {
		t.Fatal(err)
	}
	var scheduler = game.NewScheduler()
	if !scheduler.MaybeStartTurn(session) {
		t.Fatal("expected a computation to start")
	}
	return &Console{session: session, scheduler: scheduler, lines: lines}, scheduler
}

func TestWaitForEngineUndoMidThink(t *testing.T) {
	var lines = make(chan string, 1)
	lines <- "undo"
	var console, scheduler = thinkingConsole(t, lines)
	if !console.waitForEngine() {
		t.Fatal("console should keep running after a mid-think undo")
	}
	if got := len(console.session.Game().Moves()); got != 0 {
		t.Fatalf("expected the move taken back, have %d moves", got)
	}
	// The superseded outcome lands later and must be discarded on drain.
	var deadline = time.Now().Add(5 * time.Second)
	for !scheduler.HasPending() {
		if time.Now().After(deadline) {
			t.Fatal("no outcome landed")
		}
		time.Sleep(20 * time.Millisecond)
	}
	if scheduler.DrainAndApply(console.session) {
		t.Error("stale outcome applied after undo")
	}
	if got := len(console.session.Game().Moves()); got != 0 {
		t.Errorf("expected an empty game after discard, have %d moves", got)
	}
}

func TestWaitForEngineQuitMidThink(t *testing.T) {
	var lines = make(chan string, 1)
	lines <- "quit"
	var console, _ = thinkingConsole(t, lines)
	if console.waitForEngine() {
		t.Error("quit during a computation should exit the console")
	}
}

func TestWaitForEngineExitsOnClosedInput(t *testing.T) {
	var lines = make(chan string)
	close(lines)
	var console, _ = thinkingConsole(t, lines)
	if console.waitForEngine() {
		t.Error("closed input should exit the console")
	}
}

func TestReadLinesDeliversAndCloses(t *testing.T) {
	var lines = readLines(strings.NewReader("e2e4\nundo\n"))
	if got := <-lines; got != "e2e4" {
		t.Errorf("expected e2e4, got %q", got)
	}
	if got := <-lines; got != "undo" {
		t.Errorf("expected undo, got %q", got)
	}
	if _, ok := <-lines; ok {
		t.Error("expected the channel closed at EOF")
	}
}
