// Package audit keeps an operator-facing trail of everything the
// machine did: every purchase attempt, deposit, dispense and
// rejection.
package audit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"
)

type Service struct {
	logger *observability.Logger
	fileMu sync.Mutex
	f      *os.File
}

func NewService(logger *observability.Logger) *Service {
	return &Service{logger: logger}
}

// NewServiceWithFile also appends each entry as a JSONL line. The file
// is an operational trail, not machine state; the machine boots empty
// regardless.
func NewServiceWithFile(logger *observability.Logger, path string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Service{logger: logger, f: f}, nil
}

func (s *Service) Close() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// HandleEvent is a bus handler recording any machine event.
func (s *Service) HandleEvent(ctx context.Context, evt broker.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return err
	}
	s.Record(ctx, evt.Name(), fields)
	return nil
}

func (s *Service) Record(ctx context.Context, eventName string, fields map[string]any) {
	if s.logger != nil {
		s.logger.Info("audit",
			zap.String("event", eventName),
			zap.Any("fields", fields),
		)
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	if s.f == nil {
		return
	}
	line := map[string]any{
		"at":     time.Now().UTC(),
		"event":  eventName,
		"fields": fields,
	}
	b, err := json.Marshal(line)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("audit encode error", zap.String("event", eventName), zap.Error(err))
		}
		return
	}
	if _, err := s.f.Write(append(b, '\n')); err != nil && s.logger != nil {
		s.logger.Error("audit write error", zap.String("event", eventName), zap.Error(err))
	}
}
