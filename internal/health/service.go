package health

import (
	"context"
	"sort"
	"sync"
	"time"
)

type CheckFunc func(ctx context.Context) error

type Result struct {
	At     time.Time
	OK     bool
	Checks map[string]string
}

// Service runs named checks and caches the combined result for ttl so
// frequent polling stays cheap.
type Service struct {
	mu sync.Mutex

	ttl    time.Duration
	checks map[string]CheckFunc

	nextCheckAt time.Time
	lastResult  Result
}

func NewService(ttl time.Duration) *Service {
	return &Service{
		ttl:        ttl,
		checks:     make(map[string]CheckFunc),
		lastResult: Result{Checks: map[string]string{}},
	}
}

func (s *Service) Register(name string, fn CheckFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks[name] = fn
}

func (s *Service) Check(ctx context.Context) Result {
	s.mu.Lock()
	if time.Now().Before(s.nextCheckAt) {
		res := s.lastResult
		s.mu.Unlock()
		return res
	}
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	checks := s.checks
	s.mu.Unlock()
	sort.Strings(names)

	res := Result{At: time.Now().UTC(), OK: true, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		fn := checks[name]
		if fn == nil {
			res.OK = false
			res.Checks[name] = "invalid check"
			continue
		}
		if err := fn(ctx); err != nil {
			res.OK = false
			res.Checks[name] = err.Error()
			continue
		}
		res.Checks[name] = "ok"
	}

	s.mu.Lock()
	s.lastResult = res
	s.nextCheckAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return res
}
