package machine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/slots"
)

func euro() []money.Cents {
	return []money.Cents{10, 20, 50, 100}
}

func TestNew(t *testing.T) {
	var tests = []struct {
		name        string
		slotCount   int
		denoms      []money.Cents
		expectedErr error
	}{
		{name: "valid setup", slotCount: 10, denoms: euro()},
		{name: "zero slots", slotCount: 0, denoms: euro(), expectedErr: ErrInvalidSetup},
		{name: "negative slots", slotCount: -1, denoms: euro(), expectedErr: ErrInvalidSetup},
		{name: "empty denominations", slotCount: 10, denoms: nil, expectedErr: ErrInvalidSetup},
		{name: "non-positive denomination", slotCount: 10, denoms: []money.Cents{10, 0}, expectedErr: ErrInvalidSetup},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := New(tt.slotCount, tt.denoms, nil, nil, nil, nil)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.slotCount, m.Slots())
			require.Equal(t, []money.Cents{100, 50, 20, 10}, m.Denominations())
		})
	}
}

func TestMachine_Configuration(t *testing.T) {
	m, err := New(10, euro(), nil, nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, m.SetPrice(1, 30))
	price, err := m.Price(1)
	require.NoError(t, err)
	require.Equal(t, money.Cents(30), price)

	require.NoError(t, m.SetSlotCount(1, 5))
	n, err := m.SlotCount(1)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	// Stocking before pricing stays a setup error through the facade.
	require.ErrorIs(t, m.SetSlotCount(2, 5), slots.ErrPriceNotSet)

	require.NoError(t, m.SetCoinCount(10, 10))
	c, err := m.CoinCount(10)
	require.NoError(t, err)
	require.Equal(t, 10, c)

	require.Equal(t, money.Cents(100), m.CashBalance())
}

func TestMachine_CanBreakSmallestPrice(t *testing.T) {
	m, err := New(10, euro(), nil, nil, nil, nil)
	require.NoError(t, err)

	// Nothing priced yet, so there is no purchase to be ready for.
	require.Error(t, m.CanBreakSmallestPrice())

	// Cheapest product 0.30 paid with a 0.50 owes 0.20; the empty
	// float cannot cover that.
	require.NoError(t, m.SetPrice(1, 30))
	require.Error(t, m.CanBreakSmallestPrice())

	require.NoError(t, m.SetCoinCount(10, 2))
	require.NoError(t, m.CanBreakSmallestPrice())

	// Draining the small coins flips the check back to failing.
	require.NoError(t, m.SetCoinCount(10, 0))
	require.Error(t, m.CanBreakSmallestPrice())
}

func TestMachine_Preview(t *testing.T) {
	m, err := New(10, euro(), nil, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetPrice(1, 30))
	require.NoError(t, m.SetSlotCount(1, 2))
	require.NoError(t, m.SetCoinCount(10, 10))

	p, err := m.Preview(1)
	require.NoError(t, err)
	require.Equal(t, 1, p.Slot)
	require.Equal(t, money.Cents(30), p.Price)
	require.Equal(t, 2, p.Remaining)
	require.Equal(t, 10, p.CoinFloat[10])

	_, err = m.Preview(99)
	require.ErrorIs(t, err, slots.ErrSlotUnavailable)

	_, err = m.Preview(2)
	require.ErrorIs(t, err, slots.ErrPriceNotSet)
}
