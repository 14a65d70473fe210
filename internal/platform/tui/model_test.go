package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	inputs  []core.InputFrame
	resized [2]int
	over    bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }
func (g *fakeGame) State() core.GameState { return core.GameState{GameOver: g.over} }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "board") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

// resizableGame also adapts to new sizes in place.
type resizableGame struct {
	fakeGame
}

func (g *resizableGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func TestModelReservesHelpLine(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	if len(g.resets) != 1 || g.resets[0].ScreenH != 23 {
		t.Fatalf("Reset got %+v, want one call with ScreenH 23", g.resets)
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("View has %d lines, want 24", len(lines))
	}
	if !strings.Contains(lines[0], "board") {
		t.Errorf("first line %q should hold the game", lines[0])
	}
	if !strings.Contains(lines[23], "quit") {
		t.Errorf("last line %q should hold the key help", lines[23])
	}
}

func TestModelFeedsKeysOnTick(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model, _ = model.Update(runes("p"))
	model, cmd := model.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	model, _ = model.Update(TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionPause) {
		t.Errorf("first frame = %v, want Left and Pause", g.inputs[0].Actions)
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("second frame = %v, want empty", g.inputs[1].Actions)
	}

	_, cmd = model.Update(runes("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	plain := &fakeGame{}
	var model tea.Model = NewModel(plain, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(plain.resets) != 1 || plain.resets[0].ScreenW != 100 || plain.resets[0].ScreenH != 29 {
		t.Errorf("plain game resets = %+v, want one at 100x29", plain.resets)
	}

	rg := &resizableGame{}
	model = NewModel(rg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(rg.resets) != 0 {
		t.Errorf("resizable game was reset %d times", len(rg.resets))
	}
	if rg.resized != [2]int{100, 29} {
		t.Errorf("Resize got %v, want [100 29]", rg.resized)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPink)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, '█', core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output %q is missing %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen has %d newlines, want 1", got)
	}
}
