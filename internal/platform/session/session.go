// Package session turns the events of a game step into side effects shared
// by every platform: cues go to the audio player, mode transitions go to the
// log and finished attempts go to the journal.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tweety-escape/internal/audio"
	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

// Options carries the optional collaborators of a Session.
// Nil fields are replaced with silent defaults.
type Options struct {
	Journal   *storage.Journal
	Player    audio.Player
	Logger    *log.Logger
	SessionID string
}

// Session dispatches step results for one player.
type Session struct {
	id      string
	gameID  string
	journal *storage.Journal
	player  audio.Player
	logger  *log.Logger
}

// New creates a session for gameID.
func New(gameID string, opts Options) *Session {
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = storage.NewSessionID()
	}
	return &Session{
		id:      opts.SessionID,
		gameID:  gameID,
		journal: opts.Journal,
		player:  opts.Player,
		logger:  opts.Logger,
	}
}

// ID returns the journal session identifier.
func (s *Session) ID() string {
	return s.id
}

// Journal returns the attempt journal, nil when none is attached.
func (s *Session) Journal() *storage.Journal {
	return s.journal
}

// Logger returns the session logger.
func (s *Session) Logger() *log.Logger {
	return s.logger
}

// Dispatch plays the cues of r in order, logs its transitions and records
// an attempt for every entry into game over.
func (s *Session) Dispatch(r core.StepResult) {
	for _, c := range r.Cues {
		s.player.Play(c)
	}
	for _, t := range r.Transitions {
		s.logger.Debug("mode", "from", t.From, "to", t.To, "session", s.id)
		if t.To == core.ModeGameOver {
			s.record(r.State)
		}
	}
}

func (s *Session) record(st core.GameState) {
	s.logger.Info("attempt over",
		"attempt", st.Attempts,
		"score", st.Score,
		"tier", st.Tier,
		"best", st.BestScore,
	)

	if s.journal == nil {
		return
	}
	_, err := s.journal.RecordAttempt(storage.Attempt{
		SessionID: s.id,
		GameID:    s.gameID,
		Number:    st.Attempts,
		Score:     st.Score,
		Tier:      st.Tier,
	})
	if err != nil {
		s.logger.Warn("could not record attempt", "error", err)
	}
}

// Summary returns the totals of this session, or a zero Summary when no
// journal is attached.
func (s *Session) Summary() (storage.Summary, error) {
	if s.journal == nil {
		return storage.Summary{}, nil
	}
	return s.journal.SessionSummary(s.id)
}
