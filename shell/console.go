package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/notnil/chess"

	"github.com/balaramesht/chess-Game/internal/config"
	"github.com/balaramesht/chess-Game/pkg/game"
)

const tickInterval = 50 * time.Millisecond

// Console is the interactive control loop: it owns the canonical game,
// reads human moves and settings from stdin, and ticks the scheduler so
// engine decisions run in the background while the prompt stays live.
type Console struct {
	session   *game.Session
	scheduler *game.Scheduler
	cfg       *config.Config
	logger    *log.Logger
	painter   *boardPainter
	lines     <-chan string
}

func New(session *game.Session, scheduler *game.Scheduler,
	cfg *config.Config, logger *log.Logger) *Console {
	return &Console{
		session:   session,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
		painter:   newBoardPainter(),
		lines:     readLines(os.Stdin),
	}
}

// readLines pumps stdin onto a channel so the control loop can keep
// accepting commands while a computation is in flight. The channel closes
// on EOF.
func readLines(r io.Reader) <-chan string {
	var lines = make(chan string)
	go func() {
		defer close(lines)
		var scanner = bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func (c *Console) Run() {
	fmt.Println("chess-game console. Type 'help' for commands.")
	for {
		c.scheduler.DrainAndApply(c.session)
		c.printBoard()
		c.printStatus()
		if c.session.Terminal() {
			if !c.promptEndOfGame() {
				return
			}
			continue
		}
		if c.session.EngineToMove() {
			c.scheduler.MaybeStartTurn(c.session)
			if !c.waitForEngine() {
				return
			}
			continue
		}
		if !c.promptHuman() {
			return
		}
	}
}

// waitForEngine ticks until the in-flight decision lands, keeping the
// prompt live meanwhile: undo, reset and quit act immediately, and the
// superseded outcome is discarded at the next drain. The result is drained
// on the next loop pass, on the control-loop goroutine that owns the
// canonical game. Reports false when the console should exit.
func (c *Console) waitForEngine() bool {
	var ticker = time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if c.scheduler.HasPending() || !c.scheduler.Thinking() {
				return true
			}
		case line, ok := <-c.lines:
			if !ok {
				return false
			}
			switch strings.TrimSpace(line) {
			case "quit", "exit":
				return false
			case "undo":
				if !c.session.Undo() {
					fmt.Println("nothing to undo")
				}
				return true
			case "reset":
				c.session.Reset()
				return true
			case "":
			default:
				fmt.Println("engine is thinking; undo, reset and quit are available")
			}
		}
	}
}

func (c *Console) printBoard() {
	var lastMove *chess.Move
	if moves := c.session.Game().Moves(); len(moves) > 0 {
		lastMove = moves[len(moves)-1]
	}
	c.painter.PrintPosition(c.session.Position(), lastMove)
}

func (c *Console) printStatus() {
	var parts []string
	parts = append(parts, fmt.Sprintf("Turn: %s", sideName(c.session.Turn())))
	parts = append(parts, fmt.Sprintf("White: %s  Black: %s  Depth: %d",
		roleName(c.session.Side(chess.White).Human),
		roleName(c.session.Side(chess.Black).Human),
		c.session.Side(chess.White).Search.MaxDepth))
	if moves := c.session.Game().Moves(); len(moves) > 0 &&
		moves[len(moves)-1].HasTag(chess.Check) && !c.session.Terminal() {
		parts = append(parts, "Check!")
	}
	if c.session.Terminal() {
		parts = append(parts, outcomeText(c.session.Game()))
	} else if c.scheduler.Thinking() {
		parts = append(parts, "engine thinking...")
	}
	fmt.Println(strings.Join(parts, " | "))
}

func (c *Console) promptEndOfGame() bool {
	fmt.Print("game over> ")
	var line, ok = <-c.lines
	if !ok {
		return false
	}
	var cmd = strings.TrimSpace(line)
	switch cmd {
	case "reset":
		c.session.Reset()
	case "undo":
		c.session.Undo()
	case "quit", "exit":
		return false
	case "":
	default:
		fmt.Println("commands: reset, undo, quit")
	}
	return true
}

func (c *Console) promptHuman() bool {
	fmt.Print("move> ")
	var raw, ok = <-c.lines
	if !ok {
		return false
	}
	var line = strings.TrimSpace(raw)
	if line == "" {
		return true
	}
	var fields = strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help":
		c.printHelp()
	case "undo":
		if !c.session.Undo() {
			fmt.Println("nothing to undo")
		}
	case "reset":
		c.session.Reset()
	case "depth":
		c.handleDepth(fields)
	case "white", "black":
		c.handleSide(fields)
	default:
		if err := c.session.ApplyHumanMove(line); err != nil {
			fmt.Println("illegal move:", line)
		}
	}
	return true
}

func (c *Console) handleDepth(fields []string) {
	if len(fields) != 2 {
		fmt.Println("usage: depth <1-5>")
		return
	}
	var depth, err = strconv.Atoi(fields[1])
	if err != nil || depth < 1 || depth > 5 {
		fmt.Println("usage: depth <1-5>")
		return
	}
	c.session.SetDepth(depth)
	c.cfg.Depth = depth
	c.saveConfig()
}

func (c *Console) handleSide(fields []string) {
	if len(fields) != 2 || (fields[1] != "human" && fields[1] != "engine") {
		fmt.Println("usage: white|black human|engine")
		return
	}
	var color = chess.White
	if fields[0] == "black" {
		color = chess.Black
	}
	var human = fields[1] == "human"
	c.session.SetHuman(color, human)
	if color == chess.White {
		c.cfg.WhiteHuman = human
	} else {
		c.cfg.BlackHuman = human
	}
	c.saveConfig()
}

func (c *Console) saveConfig() {
	if err := c.cfg.Save(); err != nil {
		c.logger.Println("save config:", err)
	}
}

func (c *Console) printHelp() {
	fmt.Println(`commands:
  e2e4, Nf3, e7e8q        play a move (UCI or algebraic; promotions default to queen)
  undo                    take back the last move
  reset                   start a new game
  depth <1-5>             set engine search depth
  white human|engine      assign the white side
  black human|engine      assign the black side
  quit                    leave`)
}

func sideName(color chess.Color) string {
	if color == chess.White {
		return "White"
	}
	return "Black"
}

func roleName(human bool) string {
	if human {
		return "Human"
	}
	return "Engine"
}

func outcomeText(g *chess.Game) string {
	switch g.Outcome() {
	case chess.WhiteWon:
		return "Checkmate! Winner: White"
	case chess.BlackWon:
		return "Checkmate! Winner: Black"
	case chess.Draw:
		return fmt.Sprintf("Draw (%v)", g.Method())
	}
	return ""
}
