package broker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"
)

type Event interface {
	Name() string
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) []error
}

type Handler func(ctx context.Context, evt Event) error

// Bus is an in-process pub/sub broker. Handlers run synchronously in
// subscription order; a panicking handler is recovered and reported as
// an error without stopping the remaining handlers.
type Bus struct {
	mu       sync.RWMutex
	logger   *observability.Logger
	handlers map[string][]Handler
}

func New(logger *observability.Logger) *Bus {
	return &Bus{logger: logger, handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

func (b *Bus) Publish(ctx context.Context, evt Event) []error {
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[evt.Name()]...)
	b.mu.RUnlock()

	var errs []error
	for i, h := range hs {
		if err := b.dispatch(ctx, evt, h); err != nil {
			if b.logger != nil {
				b.logger.Error("broker handler error",
					zap.String("event", evt.Name()),
					zap.Int("handler_index", i),
					zap.Error(err),
				)
			}
			errs = append(errs, err)
		}
	}
	return errs
}

func (b *Bus) dispatch(ctx context.Context, evt Event, h Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, evt)
}
