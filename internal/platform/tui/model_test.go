package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tweety-escape/internal/core"
	_ "github.com/vovakirdan/tweety-escape/internal/games/tweety"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

type recordingPlayer struct {
	cues []core.Cue
}

func (p *recordingPlayer) Play(c core.Cue) { p.cues = append(p.cues, c) }
func (p *recordingPlayer) Close()          {}

func newTestModel(t *testing.T, journal *storage.Journal, player *recordingPlayer) Model {
	t.Helper()
	game, err := registry.Create("tweety")
	if err != nil {
		t.Fatalf("registry.Create() error: %v", err)
	}

	cfg := SurfaceConfig(core.DefaultConfig(), 80, 24, 10, 20)
	cfg.Seed = 42

	opts := Options{Journal: journal, SessionID: "session-a", CellWidth: 10, CellHeight: 20}
	if player != nil {
		opts.Player = player
	}
	return NewModel(game, cfg, opts)
}

func newTestJournal(t *testing.T) *storage.Journal {
	t.Helper()
	j, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// clickCell presses the left button on a cell; START on an 800x480 surface
// covers columns 55-79 and rows 11-13.
func clickCell(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func playOneAttempt(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, clickCell(60, 12))
	m = tick(t, m)
	if m.State().Mode != "ready" {
		t.Fatalf("Clicking START should enter ready, got %q", m.State().Mode)
	}
	m = send(t, m, spaceKey)
	m = tick(t, m)
	for i := 0; i < 600 && !m.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("Actor should fall and end the attempt")
	}
	return m
}

func TestModelSurfaceFromTerminal(t *testing.T) {
	m := newTestModel(t, nil, nil)

	if w, h := m.canvas.Size(); w != 800 || h != 480 {
		t.Errorf("Surface = %fx%f, expected 800x480", w, h)
	}
	if m.canvas.Screen().Width() != 80 || m.canvas.Screen().Height() != 24 {
		t.Error("Cell buffer should match the terminal size")
	}
	if m.State().Mode != "menu" {
		t.Errorf("Model should start in menu, got %q", m.State().Mode)
	}
}

func TestModelResizeKeepsSurface(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if w, h := m.canvas.Size(); w != 800 || h != 480 {
		t.Errorf("Resize must not change the surface, got %fx%f", w, h)
	}
	if m.canvas.Screen().Width() != 100 || m.canvas.Screen().Height() != 30 {
		t.Error("Resize should resize the cell buffer")
	}
}

func TestModelRecordsAttempt(t *testing.T) {
	journal := newTestJournal(t)
	player := &recordingPlayer{}
	m := newTestModel(t, journal, player)

	m = playOneAttempt(t, m)

	rows, err := journal.TopAttempts("tweety", 10)
	if err != nil {
		t.Fatalf("TopAttempts() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 recorded attempt, got %d", len(rows))
	}
	if rows[0].SessionID != "session-a" || rows[0].Number != 1 || rows[0].Tier != "beginner" {
		t.Errorf("Unexpected attempt row: %+v", rows[0])
	}

	// More ticks in GameOver record nothing new.
	for i := 0; i < 30; i++ {
		m = tick(t, m)
	}
	if rows, _ = journal.TopAttempts("tweety", 10); len(rows) != 1 {
		t.Errorf("GameOver should be recorded once, got %d rows", len(rows))
	}

	want := []core.Cue{core.CueButton, core.CueMusic, core.CueDeath}
	if len(player.cues) != len(want) {
		t.Fatalf("Played cues %v, expected %v", player.cues, want)
	}
	for i := range want {
		if player.cues[i] != want[i] {
			t.Errorf("Cue %d = %v, expected %v", i, player.cues[i], want[i])
		}
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	journal := newTestJournal(t)
	m := newTestModel(t, journal, nil)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m = send(t, m, tab)
	if m.scoreboard == nil {
		t.Fatal("Tab in menu should open the scoreboard")
	}
	if !strings.Contains(m.View(), "No attempts recorded yet") {
		t.Error("Empty journal should show the placeholder")
	}

	// Input goes to the scoreboard while it is open.
	m = send(t, m, clickCell(60, 12))
	m = tick(t, m)
	if m.State().Mode != "menu" {
		t.Errorf("Clicks must not reach the game under the scoreboard, mode=%q", m.State().Mode)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("Esc should close the scoreboard")
	}

	m = playOneAttempt(t, m)
	m = send(t, m, tab)
	if m.scoreboard == nil {
		t.Fatal("Tab in game over should open the scoreboard")
	}
	if rows := m.scoreboard.Rows(); len(rows) != 1 {
		t.Errorf("Scoreboard should list 1 attempt, got %d", len(rows))
	}
}

func TestModelScoreboardClosedWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m = send(t, m, clickCell(60, 12))
	m = tick(t, m)
	m = send(t, m, spaceKey)
	m = tick(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard != nil {
		t.Error("Tab while playing should be ignored")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelViewShowsMenu(t *testing.T) {
	m := newTestModel(t, nil, nil)
	view := m.View()

	for _, want := range []string{"Tweety Escape", "START", "Instruction"} {
		if !strings.Contains(view, want) {
			t.Errorf("Menu view should contain %q", want)
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()

	m := newTestModel(t, nil, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "tweety", "screenshots", "tweety_*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one screenshot, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "START") {
		t.Error("Screenshot should contain the menu frame")
	}
	if !strings.Contains(m.status, "saved") {
		t.Errorf("Status should report the save, got %q", m.status)
	}

	// The status line expires after a couple of seconds of ticks.
	for i := 0; i < 2*60+1; i++ {
		m = tick(t, m)
	}
	if m.status != "" {
		t.Errorf("Status should have expired, got %q", m.status)
	}
}
