package machine

import (
	"context"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
)

// CoinInventoryContract define coin inventory responsibility.
type CoinInventoryContract interface {
	IsAccepted(denomination money.Cents) bool
	Denominations() []money.Cents
	SetCount(denomination money.Cents, count int) error
	Count(denomination money.Cents) (int, error)
	Deposit(coin money.Cents) error
	Withdraw(coin money.Cents) error
	DepositAll(coins []money.Cents) error
	WithdrawAll(coins []money.Cents) error
	CanMakeChange(amount money.Cents) bool
	MakeChange(amount money.Cents) ([]money.Cents, error)
	Snapshot() map[money.Cents]int
	Balance() money.Cents
}

// SlotInventoryContract define slot inventory responsibility.
type SlotInventoryContract interface {
	IsAvailable(slot int) bool
	SlotCount() int
	SetPrice(slot int, price money.Cents) error
	Price(slot int) (money.Cents, error)
	SetCount(slot, count int) error
	Count(slot int) (int, error)
	DispenseOne(slot int) error
}

// PublisherContract define event publication responsibility.
type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}

// JournalContract define event journaling responsibility.
type JournalContract interface {
	Append(ctx context.Context, aggregateID string, evt broker.Event) error
}
