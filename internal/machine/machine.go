// Package machine composes the coin and slot inventories into one
// vending machine and runs the purchase transaction over them.
package machine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/coins"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/slots"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"
)

var (
	ErrInvalidSetup      = errors.New("machine: invalid setup")
	ErrNoCoinsInserted   = errors.New("machine: no coins inserted")
	ErrUnsupportedCoins  = errors.New("machine: inserted coins not supported")
	ErrSoldOut           = errors.New("machine: product sold out")
	ErrInsufficientFunds = errors.New("machine: insufficient funds")
	ErrChangeUnavailable = errors.New("machine: no change available")
)

// Machine is one physical vending machine instance. Configuration
// calls delegate to the inventories; Purchase serializes on mu so two
// buyers can never spend the same change coins.
type Machine struct {
	mu      sync.Mutex
	coins   CoinInventoryContract
	slots   SlotInventoryContract
	bus     PublisherContract
	journal JournalContract
	logger  *observability.Logger
	metrics *observability.Metrics
}

func New(slotCount int, denominations []money.Cents, bus PublisherContract, journal JournalContract, logger *observability.Logger, metrics *observability.Metrics) (*Machine, error) {
	slotInv, err := slots.NewInventory(slotCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	coinInv, err := coins.NewInventory(denominations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	return NewWithInventories(coinInv, slotInv, bus, journal, logger, metrics), nil
}

func NewWithInventories(coinInv CoinInventoryContract, slotInv SlotInventoryContract, bus PublisherContract, journal JournalContract, logger *observability.Logger, metrics *observability.Metrics) *Machine {
	return &Machine{
		coins:   coinInv,
		slots:   slotInv,
		bus:     bus,
		journal: journal,
		logger:  logger,
		metrics: metrics,
	}
}

func (m *Machine) SetPrice(slot int, price money.Cents) error {
	return m.slots.SetPrice(slot, price)
}

func (m *Machine) Price(slot int) (money.Cents, error) {
	return m.slots.Price(slot)
}

func (m *Machine) SetSlotCount(slot, count int) error {
	return m.slots.SetCount(slot, count)
}

func (m *Machine) SlotCount(slot int) (int, error) {
	return m.slots.Count(slot)
}

func (m *Machine) SetCoinCount(denomination money.Cents, count int) error {
	return m.coins.SetCount(denomination, count)
}

func (m *Machine) CoinCount(denomination money.Cents) (int, error) {
	return m.coins.Count(denomination)
}

// CoinFloat returns a copy of the full denomination to count mapping.
func (m *Machine) CoinFloat() map[money.Cents]int {
	return m.coins.Snapshot()
}

// CashBalance is the total value of coins currently in the machine.
func (m *Machine) CashBalance() money.Cents {
	return m.coins.Balance()
}

func (m *Machine) Denominations() []money.Cents {
	return m.coins.Denominations()
}

func (m *Machine) Slots() int {
	return m.slots.SlotCount()
}

// CanBreakSmallestPrice reports whether the float could return change
// if the cheapest priced product were paid with the smallest single
// coin covering its price. A nil error means change is ready for the
// tightest purchase the configuration allows.
func (m *Machine) CanBreakSmallestPrice() error {
	smallest := money.Cents(0)
	for slot := 1; slot <= m.slots.SlotCount(); slot++ {
		price, err := m.slots.Price(slot)
		if err != nil {
			continue
		}
		if smallest == 0 || price < smallest {
			smallest = price
		}
	}
	if smallest == 0 {
		return errors.New("machine: no slot prices configured")
	}
	cover := money.Cents(0)
	for _, d := range m.coins.Denominations() {
		if d >= smallest {
			cover = d
		}
	}
	if cover == 0 {
		// No single coin covers the price, so any valid tender is a
		// multi-coin sum and may land exact.
		return nil
	}
	if due := cover - smallest; !m.coins.CanMakeChange(due) {
		return fmt.Errorf("machine: cannot break %s, change %s unavailable", cover, due)
	}
	return nil
}

// Preview reports the slot's price, remaining units and the coin float
// without any mutation. The slot must exist and have a price.
func (m *Machine) Preview(slot int) (*Preview, error) {
	price, err := m.slots.Price(slot)
	if err != nil {
		return nil, err
	}
	remaining, err := m.slots.Count(slot)
	if err != nil {
		return nil, err
	}
	return &Preview{
		Slot:      slot,
		Price:     price,
		Remaining: remaining,
		CoinFloat: m.coins.Snapshot(),
	}, nil
}
