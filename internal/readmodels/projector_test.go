package readmodels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/events"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/journal"
)

func TestProjector_Apply(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	p := NewProjector()

	require.NoError(t, p.Apply(ctx, events.CoinsDeposited{TransactionID: "tx-1", Coins: []money.Cents{50}, Amount: 50, At: now}))
	require.NoError(t, p.Apply(ctx, events.ProductDispensed{TransactionID: "tx-1", Slot: 1, Price: 30, Remaining: 1, At: now}))
	require.NoError(t, p.Apply(ctx, events.ChangeReturned{TransactionID: "tx-1", Coins: []money.Cents{10, 10}, Amount: 20, At: now}))

	sales, ok := p.Sales(1)
	require.True(t, ok)
	require.Equal(t, 1, sales.UnitsSold)
	require.Equal(t, money.Cents(30), sales.Revenue)

	// Net cash movement equals the price.
	require.Equal(t, money.Cents(30), p.Cash().Balance)
}

func TestProjector_RejectedPurchaseNetsToZero(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	p := NewProjector()

	require.NoError(t, p.Apply(ctx, events.CoinsDeposited{TransactionID: "tx-1", Amount: 50, At: now}))
	require.NoError(t, p.Apply(ctx, events.DepositReversed{TransactionID: "tx-1", Amount: 50, At: now}))

	require.Equal(t, money.Cents(0), p.Cash().Balance)
	_, ok := p.Sales(1)
	require.False(t, ok)
}

func TestProjector_Replay(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	j := journal.New()

	require.NoError(t, j.Append(ctx, "tx-1", events.CoinsDeposited{TransactionID: "tx-1", Amount: 50, At: now}))
	require.NoError(t, j.Append(ctx, "tx-1", events.ProductDispensed{TransactionID: "tx-1", Slot: 3, Price: 30, At: now}))
	require.NoError(t, j.Append(ctx, "tx-1", events.ChangeReturned{TransactionID: "tx-1", Amount: 20, At: now}))
	require.NoError(t, j.Append(ctx, "tx-2", events.ProductDispensed{TransactionID: "tx-2", Slot: 3, Price: 30, At: now}))

	p := NewProjector()
	require.NoError(t, p.Replay(ctx, j))

	sales, ok := p.Sales(3)
	require.True(t, ok)
	require.Equal(t, 2, sales.UnitsSold)
	require.Equal(t, money.Cents(60), sales.Revenue)
	require.Equal(t, money.Cents(30), p.Cash().Balance)
}
