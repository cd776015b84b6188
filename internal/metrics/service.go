package metrics

import "github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"

type Service struct {
	m *observability.Metrics
}

func NewService(m *observability.Metrics) *Service {
	return &Service{m: m}
}

func (s *Service) Snapshot() map[string]int64 {
	if s.m == nil {
		return map[string]int64{}
	}
	return map[string]int64{
		"purchases_attempted":   s.m.PurchasesAttempted.Load(),
		"purchases_dispensed":   s.m.PurchasesDispensed.Load(),
		"purchases_rejected":    s.m.PurchasesRejected.Load(),
		"coins_deposited":       s.m.CoinsDeposited.Load(),
		"change_coins_returned": s.m.ChangeCoinsReturned.Load(),
	}
}
