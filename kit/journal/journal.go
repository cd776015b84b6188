package journal

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
)

// Record is one journaled event. The payload is the JSON encoding of
// the event at the time it was appended.
type Record struct {
	AggregateID string
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
}

// Journal is an in-memory append-only event log, indexed per aggregate
// and kept in global order. Machine state never outlives the process,
// so neither does the journal.
type Journal struct {
	mu      sync.RWMutex
	streams map[string][]Record
	log     []Record
}

func New() *Journal {
	return &Journal{streams: make(map[string][]Record)}
}

func (j *Journal) Append(ctx context.Context, aggregateID string, evt broker.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	rec := Record{
		AggregateID: aggregateID,
		EventName:   evt.Name(),
		Payload:     payload,
		OccurredAt:  time.Now().UTC(),
	}

	j.mu.Lock()
	j.streams[aggregateID] = append(j.streams[aggregateID], rec)
	j.log = append(j.log, rec)
	j.mu.Unlock()
	return nil
}

func (j *Journal) Load(ctx context.Context, aggregateID string) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]Record(nil), j.streams[aggregateID]...)
}

func (j *Journal) All(ctx context.Context) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]Record(nil), j.log...)
}
