package slots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

func tenSlots(t *testing.T) *Inventory {
	t.Helper()
	inv, err := NewInventory(10)
	require.NoError(t, err)
	return inv
}

func TestNewInventory(t *testing.T) {
	var tests = []struct {
		name        string
		slotCount   int
		expectedErr error
	}{
		{name: "positive", slotCount: 10},
		{name: "single slot", slotCount: 1},
		{name: "zero", slotCount: 0, expectedErr: ErrSlotUnavailable},
		{name: "negative", slotCount: -3, expectedErr: ErrSlotUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inv, err := NewInventory(tt.slotCount)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.slotCount, inv.SlotCount())
		})
	}
}

func TestInventory_IsAvailable(t *testing.T) {
	inv := tenSlots(t)
	require.True(t, inv.IsAvailable(1))
	require.True(t, inv.IsAvailable(10))
	require.False(t, inv.IsAvailable(0))
	require.False(t, inv.IsAvailable(11))
	require.False(t, inv.IsAvailable(-1))
}

func TestInventory_SetPrice(t *testing.T) {
	var tests = []struct {
		name        string
		slot        int
		price       money.Cents
		expectedErr error
	}{
		{name: "valid", slot: 1, price: 30},
		{name: "out of range", slot: 99, price: 30, expectedErr: ErrSlotUnavailable},
		{name: "zero price", slot: 1, price: 0, expectedErr: ErrInvalidPrice},
		{name: "negative price", slot: 1, price: -30, expectedErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inv := tenSlots(t)
			err := inv.SetPrice(tt.slot, tt.price)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			price, err := inv.Price(tt.slot)
			require.NoError(t, err)
			require.Equal(t, tt.price, price)
		})
	}
}

func TestInventory_Price_NotSet(t *testing.T) {
	inv := tenSlots(t)
	_, err := inv.Price(2)
	require.ErrorIs(t, err, ErrPriceNotSet)

	_, err = inv.Price(42)
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestInventory_SetCount(t *testing.T) {
	var tests = []struct {
		name        string
		setup       func(t *testing.T, inv *Inventory)
		slot        int
		count       int
		expectedErr error
	}{
		{
			name: "price configured first",
			setup: func(t *testing.T, inv *Inventory) {
				require.NoError(t, inv.SetPrice(1, 30))
			},
			slot:  1,
			count: 5,
		},
		{
			name:        "count before price",
			setup:       func(t *testing.T, inv *Inventory) {},
			slot:        1,
			count:       5,
			expectedErr: ErrPriceNotSet,
		},
		{
			name:        "out of range",
			setup:       func(t *testing.T, inv *Inventory) {},
			slot:        11,
			count:       5,
			expectedErr: ErrSlotUnavailable,
		},
		{
			name: "negative count",
			setup: func(t *testing.T, inv *Inventory) {
				require.NoError(t, inv.SetPrice(1, 30))
			},
			slot:        1,
			count:       -1,
			expectedErr: ErrInvalidCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inv := tenSlots(t)
			tt.setup(t, inv)
			err := inv.SetCount(tt.slot, tt.count)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			n, err := inv.Count(tt.slot)
			require.NoError(t, err)
			require.Equal(t, tt.count, n)
		})
	}
}

func TestInventory_Count_DefaultsToZero(t *testing.T) {
	inv := tenSlots(t)
	n, err := inv.Count(3)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = inv.Count(0)
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestInventory_DispenseOne(t *testing.T) {
	inv := tenSlots(t)
	require.NoError(t, inv.SetPrice(1, 30))
	require.NoError(t, inv.SetCount(1, 2))

	require.NoError(t, inv.DispenseOne(1))
	n, err := inv.Count(1)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.ErrorIs(t, inv.DispenseOne(42), ErrSlotUnavailable)
}
