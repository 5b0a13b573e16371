package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gobblet/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"wasd left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextBoard, false},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevBoard, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"replay back", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")}, core.ActionReplayBack, false},
		{"restart", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame)
	if _, _, ok := frame.ClickAt(); ok {
		t.Error("motion should not register a click")
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if _, _, ok := frame.ClickAt(); ok {
		t.Error("right button should not register a click")
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if x, y, ok := frame.ClickAt(); !ok || x != 3 || y != 4 {
		t.Errorf("ClickAt() = %d, %d, %v, expected 3, 4, true", x, y, ok)
	}
}
