package machine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
)

type CoinInventoryMock struct {
	mock.Mock
	CoinInventoryContract
}

func (m *CoinInventoryMock) IsAccepted(denomination money.Cents) bool {
	args := m.Called(denomination)
	return args.Bool(0)
}

func (m *CoinInventoryMock) DepositAll(coins []money.Cents) error {
	args := m.Called(coins)
	return args.Error(0)
}

func (m *CoinInventoryMock) WithdrawAll(coins []money.Cents) error {
	args := m.Called(coins)
	return args.Error(0)
}

func (m *CoinInventoryMock) CanMakeChange(amount money.Cents) bool {
	args := m.Called(amount)
	return args.Bool(0)
}

func (m *CoinInventoryMock) MakeChange(amount money.Cents) ([]money.Cents, error) {
	args := m.Called(amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]money.Cents), args.Error(1)
}

func (m *CoinInventoryMock) Snapshot() map[money.Cents]int {
	args := m.Called()
	return args.Get(0).(map[money.Cents]int)
}

type SlotInventoryMock struct {
	mock.Mock
	SlotInventoryContract
}

func (m *SlotInventoryMock) IsAvailable(slot int) bool {
	args := m.Called(slot)
	return args.Bool(0)
}

func (m *SlotInventoryMock) Price(slot int) (money.Cents, error) {
	args := m.Called(slot)
	return args.Get(0).(money.Cents), args.Error(1)
}

func (m *SlotInventoryMock) Count(slot int) (int, error) {
	args := m.Called(slot)
	return args.Int(0), args.Error(1)
}

func (m *SlotInventoryMock) SetCount(slot, count int) error {
	args := m.Called(slot, count)
	return args.Error(0)
}

func (m *SlotInventoryMock) DispenseOne(slot int) error {
	args := m.Called(slot)
	return args.Error(0)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, evt broker.Event) []error {
	m.Called(ctx, evt)
	return nil
}
