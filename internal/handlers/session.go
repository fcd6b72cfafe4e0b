package handlers

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/ats-scorer/internal/models"
)

const (
	sessionKeyAnalysisID = "analysis_id"
	sessionKeyResult     = "ats_result"
)

// SessionSlot keeps the last successful analysis of each browser session and
// guards against concurrent submissions from the same session.
type SessionSlot struct {
	store *session.Store

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSessionSlot(store *session.Store) *SessionSlot {
	return &SessionSlot{
		store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// Load returns the session and the context it currently holds.
func (s *SessionSlot) Load(c *fiber.Ctx) (*session.Session, models.SessionContext, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, models.SessionContext{}, fmt.Errorf("failed to load session: %w", err)
	}

	var sc models.SessionContext
	if id, ok := sess.Get(sessionKeyAnalysisID).(string); ok {
		sc.AnalysisID = id
	}
	if raw, ok := sess.Get(sessionKeyResult).(string); ok {
		sc.RawResult = raw
	}

	return sess, sc, nil
}

// Save overwrites the session's result with analysis. The session must not be
// used afterwards.
func (s *SessionSlot) Save(sess *session.Session, analysis *models.Analysis) error {
	sess.Set(sessionKeyAnalysisID, analysis.ID.String())
	sess.Set(sessionKeyResult, analysis.Raw)

	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Acquire marks the session as running an analysis. It reports false when
// one is already in flight.
func (s *SessionSlot) Acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *SessionSlot) Release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, sessionID)
}
