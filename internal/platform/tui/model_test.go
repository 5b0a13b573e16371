package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gobblet/internal/core"
)

// stubGame finishes after a fixed number of confirms.
type stubGame struct {
	confirms  int
	winAt     int
	resets    int
	lastW     int
	lastH     int
	lastClick [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.confirms = 0
	g.lastW, g.lastH = cfg.ScreenW, cfg.ScreenH
}

func (g *stubGame) Resize(w, h int) {
	g.lastW, g.lastH = w, h
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionConfirm) {
		g.confirms++
	}
	if x, y, ok := in.ClickAt(); ok {
		g.lastClick = [2]int{x, y}
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{HalfMoves: g.confirms, GameOver: g.confirms >= g.winAt, Winner: "Alice"}
}

func (g *stubGame) Result() core.MatchResult {
	return core.MatchResult{GameID: "stub", Winner: "Alice", WinnerSeat: 1, HalfMoves: g.confirms}
}

type recordingSaver struct {
	saved []core.MatchResult
	err   error
}

func (s *recordingSaver) SaveMatch(m core.MatchResult) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, m)
	return int64(len(s.saved)), nil
}

func step(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tick  = TickMsg{}
)

func newStubModel(saver ResultSaver) (Model, *stubGame) {
	g := &stubGame{winAt: 2}
	m := NewModel(g, saver, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, nil)
	m.Init()
	return m, g
}

func TestModelSavesResultOnce(t *testing.T) {
	saver := &recordingSaver{}
	m, _ := newStubModel(saver)

	m = step(t, m, enter, tick, enter, tick, tick, tick)

	if !m.gameState.GameOver {
		t.Fatal("expected the stub match to be over")
	}
	if len(saver.saved) != 1 {
		t.Fatalf("saved %d results, expected exactly 1", len(saver.saved))
	}
	if saver.saved[0].HalfMoves != 2 {
		t.Errorf("saved HalfMoves = %d, expected 2", saver.saved[0].HalfMoves)
	}
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	m, _ := newStubModel(saver)

	m = step(t, m, enter, tick, enter, tick)
	if !m.resultSaved {
		t.Error("a failed save should not be retried every tick")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	saver := &recordingSaver{}
	m, g := newStubModel(saver)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, tick)
	if g.resets != 1 {
		t.Errorf("restart before game over should be ignored, resets = %d", g.resets)
	}

	m = step(t, m, enter, tick, enter, tick)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, tick)
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 after restart", g.resets)
	}
	if m.gameState.GameOver || m.resultSaved {
		t.Error("restart should clear the finished state")
	}

	m = step(t, m, enter, tick, enter, tick)
	if len(saver.saved) != 2 {
		t.Errorf("saved %d results, expected one per match", len(saver.saved))
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	m, g := newStubModel(nil)
	m = step(t, m, enter, tick)

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", g.resets)
	}
	if g.lastW != 100 || g.lastH >= 40 || g.lastH < 30 {
		t.Errorf("game size = %dx%d, expected 100 wide and the height minus the help bar", g.lastW, g.lastH)
	}
	if g.confirms != 1 {
		t.Error("match progress lost on resize")
	}
}

func TestModelHelpToggleShrinksGame(t *testing.T) {
	m, g := newStubModel(nil)
	short := g.lastH

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Fatal("? should toggle full help")
	}
	if g.lastH >= short {
		t.Errorf("full help should take more rows: height %d, was %d", g.lastH, short)
	}
	if !strings.Contains(m.View(), "replay back") {
		t.Error("full help should list the replay keys")
	}
}

func TestModelForwardsClicks(t *testing.T) {
	m, g := newStubModel(nil)

	m = step(t, m,
		tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tick,
	)
	if g.lastClick != [2]int{12, 7} {
		t.Errorf("click = %v, expected [12 7]", g.lastClick)
	}
	if _, _, ok := m.inputFrame.ClickAt(); ok {
		t.Error("click should be consumed by the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newStubModel(nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newStubModel(nil)
	if !strings.Contains(m.View(), "stub board") {
		t.Error("View should contain the game render")
	}
}
