// Package alerts raises operator notifications for conditions that
// need a restock visit: an empty slot or a change float running low.
package alerts

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/events"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"
)

type FloatReader interface {
	CoinFloat() map[money.Cents]int
}

type Service struct {
	logger *observability.Logger
	float  FloatReader

	// coins remaining per denomination at or below which a low-change
	// alert fires
	lowChangeThreshold int

	raised atomic.Int64
}

func NewService(logger *observability.Logger, float FloatReader, lowChangeThreshold int) *Service {
	return &Service{logger: logger, float: float, lowChangeThreshold: lowChangeThreshold}
}

// Raised counts alerts fired since startup.
func (s *Service) Raised() int64 {
	return s.raised.Load()
}

// HandleEvent is a bus handler watching for alert-worthy activity.
func (s *Service) HandleEvent(ctx context.Context, evt broker.Event) error {
	switch e := evt.(type) {
	case events.PurchaseRejected:
		if e.Kind == "sold_out" {
			s.alert("slot sold out",
				zap.Int("slot", e.Slot),
				zap.String("transaction_id", e.TransactionID),
			)
		}
		if e.Kind == "no_change_available" {
			s.alert("change unavailable",
				zap.Int("slot", e.Slot),
				zap.String("transaction_id", e.TransactionID),
			)
		}
	case events.ProductDispensed:
		if e.Remaining == 0 {
			s.alert("slot now empty", zap.Int("slot", e.Slot))
		}
	case events.ChangeReturned:
		s.checkFloat()
	}
	return nil
}

func (s *Service) checkFloat() {
	if s.float == nil {
		return
	}
	for denomination, count := range s.float.CoinFloat() {
		if count <= s.lowChangeThreshold {
			s.alert("change float low",
				zap.String("denomination", denomination.String()),
				zap.Int("remaining", count),
			)
		}
	}
}

func (s *Service) alert(msg string, fields ...zap.Field) {
	s.raised.Add(1)
	if s.logger != nil {
		s.logger.Warn(msg, fields...)
	}
}
