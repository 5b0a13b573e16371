package gobblet

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-gobblet/internal/config"
	"github.com/vovakirdan/tui-gobblet/internal/core"
	"github.com/vovakirdan/tui-gobblet/internal/registry"
)

// GameID is the registry key of the gobblet game.
const GameID = "gobblet"

// maxNotices is how many notices are visible at once; older ones are dropped.
const maxNotices = 3

// notice is a transient message shown under the boards.
type notice struct {
	text    string
	expires uint64 // tick at which the notice disappears
}

// cursor is the keyboard selection.
type cursor struct {
	board    BoardKind
	row, col int
}

// boardCycle is the order Tab walks through the boards.
var boardCycle = []BoardKind{BoardSupply1, BoardMain, BoardSupply2, BoardStaging}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts an Engine to the platform: it turns cursor moves, confirms
// and mouse clicks into pick/place attempts and draws the boards.
type Game struct {
	cfg    config.GobbletConfig
	fixed  bool // cfg was supplied by the caller; skip file lookup
	engine *Engine
	colors [2]core.Color

	tick     uint64
	screenW  int
	screenH  int
	layout   layout
	tooSmall bool

	cursor  cursor
	notices []notice // newest first
	replay  int      // snapshot shown once the match is over
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultGobbletConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.GobbletConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gobblet"
}

// Reset starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixed {
		cfg, err := config.LoadGobblet(configPath)
		if err != nil {
			cfg = config.DefaultGobbletConfig()
		}
		g.cfg = cfg
	}

	for i, pc := range []config.PlayerConfig{g.cfg.Players.Player1, g.cfg.Players.Player2} {
		c, ok := core.ParseColor(pc.Color)
		if !ok {
			c = []core.Color{core.ColorBrightRed, core.ColorBrightBlue}[i]
		}
		g.colors[i] = c
	}

	perSize := g.cfg.Rules.PiecesPerSize
	if perSize < 1 || perSize > SupplyCols {
		perSize = DefaultPiecesPerSize
	}
	g.engine = NewEngine(perSize)

	g.tick = 0
	g.notices = nil
	g.replay = 0
	g.cursor = cursor{board: SupplyOf(Player1)}
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize follows a terminal resize without touching the match.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = newLayout(width)
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.expireNotices()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.engine.IsComplete() {
		switch {
		case in.Has(core.ActionReplayBack):
			g.replay = max(g.replay-1, 0)
		case in.Has(core.ActionReplayForward):
			g.replay = min(g.replay+1, g.engine.HistoryLength())
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	case in.Has(core.ActionNextBoard):
		g.cycleBoard(1)
	case in.Has(core.ActionPrevBoard):
		g.cycleBoard(-1)
	case in.Has(core.ActionBack):
		g.jump(BoardMain, 1, 1)
	}

	if x, y, ok := in.ClickAt(); ok {
		if k, row, col, hit := g.layout.hit(x, y); hit {
			g.cursor = cursor{board: k, row: row, col: col}
			g.attempt(k, row, col)
		}
	} else if in.Has(core.ActionConfirm) {
		g.attempt(g.cursor.board, g.cursor.row, g.cursor.col)
	}

	return core.StepResult{State: g.State()}
}

// attempt performs a pick or place and reports the outcome as a notice.
func (g *Game) attempt(k BoardKind, row, col int) {
	if g.engine.IsComplete() {
		return
	}
	if err := g.engine.Attempt(k, row, col); err != nil {
		g.notify(sentence(err.Error()))
		return
	}

	switch g.engine.Phase() {
	case PhaseCommit:
		if k != BoardMain {
			g.jump(BoardMain, 1, 1)
		}
	case PhaseComplete:
		g.replay = g.engine.HistoryLength()
		g.notify(fmt.Sprintf("Game! %s win!", g.playerName(g.engine.Winner())))
	}
}

// notify pushes a message that stays for the configured number of ticks.
func (g *Game) notify(text string) {
	n := notice{text: text, expires: g.tick + uint64(g.cfg.Display.NoticeTicks)}
	g.notices = append([]notice{n}, g.notices...)
	if len(g.notices) > maxNotices {
		g.notices = g.notices[:maxNotices]
	}
}

func (g *Game) expireNotices() {
	g.notices = lo.Filter(g.notices, func(n notice, _ int) bool {
		return n.expires > g.tick
	})
}

// moveCursor moves within the current board and steps onto the
// neighbouring board at an edge.
func (g *Game) moveCursor(dr, dc int) {
	b := g.engine.State().Board(g.cursor.board)
	row, col := g.cursor.row+dr, g.cursor.col+dc
	if b.Contains(row, col) {
		g.cursor.row, g.cursor.col = row, col
		return
	}

	switch g.cursor.board {
	case BoardMain:
		switch {
		case col < 0:
			g.jump(BoardSupply1, row, SupplyCols-1)
		case col >= MainSize:
			g.jump(BoardSupply2, row, 0)
		case row >= MainSize:
			g.jump(BoardStaging, 0, 0)
		}
	case BoardSupply1:
		if col >= SupplyCols {
			g.jump(BoardMain, row, 0)
		}
	case BoardSupply2:
		if col < 0 {
			g.jump(BoardMain, row, MainSize-1)
		}
	case BoardStaging:
		if row < 0 {
			g.jump(BoardMain, MainSize-1, 1)
		}
	}
}

func (g *Game) cycleBoard(step int) {
	i := lo.IndexOf(boardCycle, g.cursor.board)
	next := boardCycle[(i+step+len(boardCycle))%len(boardCycle)]
	g.jump(next, g.cursor.row, g.cursor.col)
}

// jump moves the cursor to board k, clamping the cell into range.
func (g *Game) jump(k BoardKind, row, col int) {
	b := g.engine.State().Board(k)
	g.cursor = cursor{
		board: k,
		row:   core.Clamp(row, 0, b.Rows()-1),
		col:   core.Clamp(col, 0, b.Cols()-1),
	}
}

// view returns the position to draw: the replay snapshot once the match
// is over, the live state otherwise.
func (g *Game) view() State {
	if g.engine.IsComplete() && g.replay < g.engine.HistoryLength() {
		if st, err := g.engine.SnapshotAt(g.replay); err == nil {
			return st
		}
	}
	return g.engine.State()
}

func (g *Game) playerName(p Player) string {
	switch p {
	case Player1:
		return g.cfg.Players.Player1.Name
	case Player2:
		return g.cfg.Players.Player2.Name
	default:
		return p.String()
	}
}

func (g *Game) playerColor(p Player) core.Color {
	if p == Nobody {
		return core.ColorDefault
	}
	return g.colors[p.index()]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		HalfMoves: g.engine.TurnNumber(),
		GameOver:  g.engine.IsComplete(),
	}
	if st.GameOver {
		st.Winner = g.playerName(g.engine.Winner())
	}
	return st
}

// Result describes the finished match.
func (g *Game) Result() core.MatchResult {
	winner := g.engine.Winner()
	seat := 0
	if winner != Nobody {
		seat = winner.index() + 1
	}
	return core.MatchResult{
		GameID:     GameID,
		Winner:     g.playerName(winner),
		WinnerSeat: seat,
		HalfMoves:  g.engine.TurnNumber(),
		Lines:      lo.Map(g.engine.WinningLines(), func(l Line, _ int) string { return l.Name }),
		Transcript: lo.Map(g.engine.Moves(), func(m Move, _ int) string { return m.String() }),
	}
}

// sentence capitalizes an error message for display.
func sentence(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
