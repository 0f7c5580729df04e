package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultCheckTimeout = 3 * time.Second

// CheckFunc probes one dependency; nil means healthy.
type CheckFunc func(ctx context.Context) error

// Report is the readiness payload.
type Report struct {
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks"`
}

// Service encapsulates health-related checks.
type Service struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	Timeout time.Duration
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{checks: make(map[string]CheckFunc), Timeout: defaultCheckTimeout}
}

// Register adds a named readiness check.
func (s *Service) Register(name string, fn CheckFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.checks[name] = fn
	s.mu.Unlock()
}

// Status returns a simple liveness payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// Names lists registered checks in sorted order.
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ready runs every check concurrently, each bounded by Timeout.
func (s *Service) Ready(ctx context.Context) Report {
	s.mu.RLock()
	checks := make(map[string]CheckFunc, len(s.checks))
	for name, fn := range s.checks {
		checks[name] = fn
	}
	s.mu.RUnlock()

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	var (
		mu     sync.Mutex
		report = Report{OK: true, Checks: make(map[string]string, len(checks))}
		g      errgroup.Group
	)
	for name, fn := range checks {
		name, fn := name, fn
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			status := "ok"
			if err := fn(cctx); err != nil {
				status = err.Error()
			}
			mu.Lock()
			report.Checks[name] = status
			if status != "ok" {
				report.OK = false
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return report
}
