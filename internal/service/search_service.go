package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/dto"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/pkg/debounce"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

// SearchServiceConfig tunes typeahead sessions.
type SearchServiceConfig struct {
	Window     time.Duration
	SessionTTL time.Duration
	Clock      debounce.Clock
}

type searchSession struct {
	id        string
	debouncer *debounce.Debouncer[string]

	mu          sync.Mutex
	lastQuery   string
	destination string
	settledAt   time.Time
	lastSeen    time.Time
}

func (s *searchSession) snapshot() dto.SearchSessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.SearchSessionResponse{
		SessionID:   s.id,
		Pending:     s.debouncer.Pending(),
		LastQuery:   s.lastQuery,
		Destination: s.destination,
	}
	if !s.settledAt.IsZero() {
		settled := s.settledAt
		resp.SettledAt = &settled
	}
	return resp
}

func (s *searchSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *searchSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SearchService debounces typeahead keystrokes per session and records the
// listing link each settled query navigates to.
type SearchService struct {
	mu       sync.Mutex
	sessions map[string]*searchSession
	cfg      SearchServiceConfig
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewSearchService constructs a SearchService.
func NewSearchService(cfg SearchServiceConfig, metrics *MetricsService, logger *zap.Logger) *SearchService {
	if cfg.Window <= 0 {
		cfg.Window = debounce.DefaultWindow
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 15 * time.Minute
	}
	if cfg.Clock == nil {
		cfg.Clock = debounce.RealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		sessions: make(map[string]*searchSession),
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Create opens a new typeahead session.
func (s *SearchService) Create(ctx context.Context) dto.SearchSessionResponse {
	session := &searchSession{id: uuid.NewString(), lastSeen: s.now()}
	session.debouncer = debounce.New(s.cfg.Window, func(query string) {
		s.settle(session, query)
	}, debounce.WithClock(s.cfg.Clock))

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.logger.Debug("search session opened", zap.String("session_id", session.id))
	return session.snapshot()
}

// Submit records the current contents of the search box. Only the last
// value of a burst of keystrokes settles.
func (s *SearchService) Submit(ctx context.Context, id, query string) (*dto.SearchSessionResponse, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.touch(s.now())
	session.debouncer.Call(query)
	resp := session.snapshot()
	return &resp, nil
}

// Flush settles any pending keystrokes immediately.
func (s *SearchService) Flush(ctx context.Context, id string) (*dto.SearchSessionResponse, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.touch(s.now())
	session.debouncer.Flush()
	resp := session.snapshot()
	return &resp, nil
}

// Resolve reports the last settled destination of a session.
func (s *SearchService) Resolve(ctx context.Context, id string) (*dto.SearchSessionResponse, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	resp := session.snapshot()
	return &resp, nil
}

// Close drops a session and any keystrokes still pending.
func (s *SearchService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "search session not found")
	}
	session.debouncer.Cancel()
	return nil
}

// EvictIdle removes sessions idle for longer than the session TTL and
// returns how many were dropped.
func (s *SearchService) EvictIdle(ctx context.Context) int {
	cutoff := s.now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	var stale []*searchSession
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			stale = append(stale, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range stale {
		session.debouncer.Cancel()
	}
	if len(stale) > 0 {
		s.logger.Info("evicted idle search sessions", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// Shutdown cancels every pending debounce timer.
func (s *SearchService) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*searchSession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.debouncer.Cancel()
	}
}

// Len returns the number of open sessions.
func (s *SearchService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SearchService) lookup(id string) (*searchSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "search session not found")
	}
	return session, nil
}

func (s *SearchService) settle(session *searchSession, query string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return
	}

	session.mu.Lock()
	session.lastQuery = trimmed
	session.destination = navigation.SearchLink(trimmed)
	session.settledAt = s.now().UTC()
	session.mu.Unlock()

	s.metrics.IncSearchSettled()
	s.logger.Debug("search settled", zap.String("session_id", session.id), zap.String("query", trimmed))
}
