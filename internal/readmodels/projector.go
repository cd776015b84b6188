package readmodels

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/events"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/journal"
)

// SalesView aggregates what one slot has sold.
type SalesView struct {
	Slot      int
	UnitsSold int
	Revenue   money.Cents
	UpdatedAt time.Time
}

// CashView tracks the net coin value moved by purchases: deposits in,
// change and reversals out.
type CashView struct {
	Balance   money.Cents
	UpdatedAt time.Time
}

type Projector struct {
	mu    sync.RWMutex
	sales map[int]SalesView
	cash  CashView
}

func NewProjector() *Projector {
	return &Projector{sales: make(map[int]SalesView)}
}

// Replay rebuilds the views from a journal, e.g. after subscribers
// were wired late.
func (p *Projector) Replay(ctx context.Context, j *journal.Journal) error {
	for _, rec := range j.All(ctx) {
		if err := p.ApplyRecord(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Apply is a bus handler updating the views from a live event.
func (p *Projector) Apply(ctx context.Context, evt broker.Event) error {
	switch e := evt.(type) {
	case events.ProductDispensed:
		p.applyProductDispensed(e)
	case events.CoinsDeposited:
		p.applyCoinsDeposited(e)
	case events.DepositReversed:
		p.applyDepositReversed(e)
	case events.ChangeReturned:
		p.applyChangeReturned(e)
	}
	return nil
}

// ApplyRecord updates the views from a journaled record.
func (p *Projector) ApplyRecord(ctx context.Context, rec journal.Record) error {
	switch rec.EventName {
	case (events.ProductDispensed{}).Name():
		var e events.ProductDispensed
		if err := json.Unmarshal(rec.Payload, &e); err != nil {
			return err
		}
		p.applyProductDispensed(e)
	case (events.CoinsDeposited{}).Name():
		var e events.CoinsDeposited
		if err := json.Unmarshal(rec.Payload, &e); err != nil {
			return err
		}
		p.applyCoinsDeposited(e)
	case (events.DepositReversed{}).Name():
		var e events.DepositReversed
		if err := json.Unmarshal(rec.Payload, &e); err != nil {
			return err
		}
		p.applyDepositReversed(e)
	case (events.ChangeReturned{}).Name():
		var e events.ChangeReturned
		if err := json.Unmarshal(rec.Payload, &e); err != nil {
			return err
		}
		p.applyChangeReturned(e)
	}
	return nil
}

func (p *Projector) Sales(slot int) (SalesView, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.sales[slot]
	return v, ok
}

func (p *Projector) Cash() CashView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cash
}

func (p *Projector) applyProductDispensed(e events.ProductDispensed) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur := p.sales[e.Slot]
	cur.Slot = e.Slot
	cur.UnitsSold++
	cur.Revenue += e.Price
	cur.UpdatedAt = e.At
	p.sales[e.Slot] = cur
}

func (p *Projector) applyCoinsDeposited(e events.CoinsDeposited) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cash.Balance += e.Amount
	p.cash.UpdatedAt = e.At
}

func (p *Projector) applyDepositReversed(e events.DepositReversed) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cash.Balance -= e.Amount
	p.cash.UpdatedAt = e.At
}

func (p *Projector) applyChangeReturned(e events.ChangeReturned) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cash.Balance -= e.Amount
	p.cash.UpdatedAt = e.At
}
