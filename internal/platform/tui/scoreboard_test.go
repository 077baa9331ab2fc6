package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tweety-escape/internal/storage"
)

func TestScoreboardRows(t *testing.T) {
	journal := newTestJournal(t)
	attempts := []storage.Attempt{
		{SessionID: "session-a", GameID: "tweety", Number: 1, Score: 3, Tier: "beginner"},
		{SessionID: "other-session-id", GameID: "tweety", Number: 1, Score: 12, Tier: "medium"},
		{SessionID: "session-a", GameID: "tweety", Number: 2, Score: 7, Tier: "beginner"},
		{SessionID: "session-a", GameID: "other", Number: 1, Score: 99, Tier: "hard"},
	}
	for _, a := range attempts {
		if _, err := journal.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() error: %v", err)
		}
	}

	sb := NewScoreboardModel(journal, "tweety", "Tweety Escape", "session-a", 100, 30)

	rows := sb.Rows()
	if len(rows) != 3 {
		t.Fatalf("Expected 3 tweety rows, got %d", len(rows))
	}
	for i, want := range []int{12, 7, 3} {
		if rows[i].Score != want {
			t.Errorf("Row %d score = %d, expected %d", i, rows[i].Score, want)
		}
	}

	tests := []struct {
		session string
		want    string
	}{
		{"session-a", "you"},
		{"other-session-id", "other-se"},
		{"short", "short"},
	}
	for _, tt := range tests {
		if got := sb.playerLabel(tt.session); got != tt.want {
			t.Errorf("playerLabel(%q) = %q, expected %q", tt.session, got, tt.want)
		}
	}

	view := sb.View()
	if !strings.Contains(view, "BEST ATTEMPTS - Tweety Escape") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "3 attempts") || !strings.Contains(view, "best 12") {
		t.Errorf("View should show the summary, got:\n%s", view)
	}
}

func TestScoreboardWithoutJournal(t *testing.T) {
	sb := NewScoreboardModel(nil, "tweety", "Tweety Escape", "s", 80, 24)
	if len(sb.Rows()) != 0 {
		t.Error("No journal means no rows")
	}
	if !strings.Contains(sb.View(), "not available") {
		t.Error("View should explain that the journal is missing")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		back  bool
		quit  bool
		isCmd bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"tab goes back", tea.KeyMsg{Type: tea.KeyTab}, true, false, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false, true, true},
		{"down scrolls", tea.KeyMsg{Type: tea.KeyDown}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewScoreboardModel(nil, "tweety", "Tweety Escape", "s", 80, 24)
			next, cmd := sb.Update(tt.msg)
			got := next.(ScoreboardModel)
			if got.IsGoingBack() != tt.back || got.IsQuitting() != tt.quit {
				t.Errorf("back=%v quit=%v, expected back=%v quit=%v",
					got.IsGoingBack(), got.IsQuitting(), tt.back, tt.quit)
			}
			if tt.isCmd && cmd == nil {
				t.Error("Expected a command")
			}
		})
	}
}
