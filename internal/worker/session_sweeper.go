package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

// SessionSweeper periodically purges expired sessions from the store.
// The store also drops expired entries lazily on resolve; the sweeper keeps
// abandoned tokens from piling up.
type SessionSweeper struct {
	store    session.Store
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionSweeper constructs the sweeper with the given interval.
func NewSessionSweeper(store session.Store, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SessionSweeper{store: store, interval: interval, logger: logger}
}

// Start launches background sweeping.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.store.Sweep(); removed > 0 {
				s.logger.Info("swept expired sessions", slog.Int("count", removed))
			}
		}
	}
}
