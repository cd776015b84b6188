package observability

import "sync/atomic"

type Metrics struct {
	PurchasesAttempted  atomic.Int64
	PurchasesDispensed  atomic.Int64
	PurchasesRejected   atomic.Int64
	CoinsDeposited      atomic.Int64
	ChangeCoinsReturned atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) PurchasesAttemptedAdd(n int64) {
	m.PurchasesAttempted.Add(n)
}

func (m *Metrics) PurchasesDispensedAdd(n int64) {
	m.PurchasesDispensed.Add(n)
}

func (m *Metrics) PurchasesRejectedAdd(n int64) {
	m.PurchasesRejected.Add(n)
}

func (m *Metrics) CoinsDepositedAdd(n int64) {
	m.CoinsDeposited.Add(n)
}

func (m *Metrics) ChangeCoinsReturnedAdd(n int64) {
	m.ChangeCoinsReturned.Add(n)
}
