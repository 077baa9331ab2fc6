package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGameTitle(t *testing.T) {
	title, err := gameTitle("tweety")
	if err != nil {
		t.Fatalf("gameTitle() error: %v", err)
	}
	if title != "Tweety Escape" {
		t.Errorf("Title = %q, expected Tweety Escape", title)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "missing"

	_, err := NewSSHServer(cfg, log.New(io.Discard))
	if err == nil {
		t.Fatal("Unknown game should be rejected")
	}
	if !strings.Contains(err.Error(), "tweety") {
		t.Errorf("Error should list the registered games, got %q", err)
	}
}
