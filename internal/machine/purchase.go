package machine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/coins"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/events"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/slots"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
)

// Purchase runs one vend: validate slot and coins, check stock, funds
// and change feasibility, then commit (deposit coins, dispense one
// unit, withdraw change). The whole sequence holds the machine lock;
// any rejection leaves both inventories exactly as they were.
func (m *Machine) Purchase(ctx context.Context, slot int, inserted []money.Cents) (*Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.PurchasesAttempted.Add(1)
	}

	tx := newTransaction(slot, inserted)
	m.emit(ctx, tx.ID, events.PurchaseInitiated{
		TransactionID: tx.ID,
		Slot:          slot,
		Inserted:      tx.Inserted,
		At:            time.Now().UTC(),
	})

	// Step 1: slot existence.
	if !m.slots.IsAvailable(slot) {
		return m.reject(ctx, tx, fmt.Errorf("%w: slot %d", slots.ErrSlotUnavailable, slot))
	}

	// Step 2: non-empty input.
	if len(inserted) == 0 {
		return m.reject(ctx, tx, ErrNoCoinsInserted)
	}

	// Step 3: coin acceptance. Unsupported coins are ejected, not
	// deposited; the purchase proceeds on the accepted subset.
	for _, coin := range inserted {
		if m.coins.IsAccepted(coin) {
			tx.Accepted = append(tx.Accepted, coin)
			tx.Tendered += coin
		} else {
			tx.Rejected = append(tx.Rejected, coin)
		}
	}
	if len(tx.Accepted) == 0 {
		return m.reject(ctx, tx, ErrUnsupportedCoins)
	}
	tx.Status = StatusInputValidated

	// Step 4: stock.
	remaining, err := m.slots.Count(slot)
	if err != nil {
		return m.reject(ctx, tx, err)
	}
	if remaining == 0 {
		return m.reject(ctx, tx, fmt.Errorf("%w: slot %d", ErrSoldOut, slot))
	}

	// Step 5: funds.
	price, err := m.slots.Price(slot)
	if err != nil {
		return m.reject(ctx, tx, err)
	}
	if tx.Tendered < price {
		return m.reject(ctx, tx, fmt.Errorf("%w: tendered %s, price %s", ErrInsufficientFunds, tx.Tendered, price))
	}

	// Step 6: change feasibility against the float as it stands after
	// the tendered coins land in it.
	if err := m.coins.DepositAll(tx.Accepted); err != nil {
		return m.reject(ctx, tx, err)
	}
	m.emit(ctx, tx.ID, events.CoinsDeposited{
		TransactionID: tx.ID,
		Coins:         tx.Accepted,
		Amount:        tx.Tendered,
		At:            time.Now().UTC(),
	})
	changeDue := tx.Tendered - price
	if !m.coins.CanMakeChange(changeDue) {
		m.reverseDeposit(ctx, tx)
		return m.reject(ctx, tx, fmt.Errorf("%w: change due %s", ErrChangeUnavailable, changeDue))
	}
	tx.Status = StatusFundsValidated

	// Step 7: commit.
	if err := m.slots.DispenseOne(slot); err != nil {
		m.reverseDeposit(ctx, tx)
		return m.reject(ctx, tx, err)
	}
	change, err := m.coins.MakeChange(changeDue)
	if err != nil {
		// Feasibility was confirmed under this same lock, so this is
		// an inventory fault. Put the unit and the coins back before
		// surfacing it.
		_ = m.slots.SetCount(slot, remaining)
		m.reverseDeposit(ctx, tx)
		return m.reject(ctx, tx, err)
	}
	tx.Change = change
	tx.Status = StatusDispensed

	now := time.Now().UTC()
	m.emit(ctx, tx.ID, events.ProductDispensed{
		TransactionID: tx.ID,
		Slot:          slot,
		Price:         price,
		Remaining:     remaining - 1,
		At:            now,
	})
	m.emit(ctx, tx.ID, events.ChangeReturned{
		TransactionID: tx.ID,
		Coins:         change,
		Amount:        changeDue,
		At:            now,
	})

	if m.metrics != nil {
		m.metrics.PurchasesDispensed.Add(1)
		m.metrics.CoinsDeposited.Add(int64(len(tx.Accepted)))
		m.metrics.ChangeCoinsReturned.Add(int64(len(change)))
	}
	if m.logger != nil {
		m.logger.Info("product dispensed",
			zap.String("transaction_id", tx.ID),
			zap.Int("slot", slot),
			zap.String("price", price.String()),
			zap.String("tendered", tx.Tendered.String()),
			zap.String("change", changeDue.String()),
		)
	}

	return &Receipt{
		TransactionID: tx.ID,
		Slot:          slot,
		Price:         price,
		Tendered:      tx.Tendered,
		ChangeCoins:   change,
		RejectedCoins: tx.Rejected,
	}, nil
}

// reverseDeposit withdraws the coins deposited for tx so a failed
// purchase leaves the float unchanged net of the attempt.
func (m *Machine) reverseDeposit(ctx context.Context, tx *Transaction) {
	if err := m.coins.WithdrawAll(tx.Accepted); err != nil && m.logger != nil {
		m.logger.Error("deposit reversal failed",
			zap.String("transaction_id", tx.ID),
			zap.Error(err),
		)
	}
	m.emit(ctx, tx.ID, events.DepositReversed{
		TransactionID: tx.ID,
		Coins:         tx.Accepted,
		Amount:        tx.Tendered,
		At:            time.Now().UTC(),
	})
}

func (m *Machine) reject(ctx context.Context, tx *Transaction, err error) (*Receipt, error) {
	tx.Status = StatusRejected
	tx.Reason = err.Error()

	if m.metrics != nil {
		m.metrics.PurchasesRejected.Add(1)
	}
	if m.logger != nil {
		m.logger.Info("purchase rejected",
			zap.String("transaction_id", tx.ID),
			zap.Int("slot", tx.Slot),
			zap.String("kind", RejectionKind(err)),
			zap.Error(err),
		)
	}
	m.emit(ctx, tx.ID, events.PurchaseRejected{
		TransactionID: tx.ID,
		Slot:          tx.Slot,
		Kind:          RejectionKind(err),
		Reason:        err.Error(),
		At:            time.Now().UTC(),
	})
	return nil, err
}

func (m *Machine) emit(ctx context.Context, transactionID string, evt broker.Event) {
	if m.journal != nil {
		if err := m.journal.Append(ctx, transactionID, evt); err != nil && m.logger != nil {
			m.logger.Error("journal append failed",
				zap.String("transaction_id", transactionID),
				zap.String("event", evt.Name()),
				zap.Error(err),
			)
		}
	}
	if m.bus != nil {
		m.bus.Publish(ctx, evt)
	}
}

// RejectionKind maps a purchase failure to its taxonomy name so
// callers and event consumers can branch without string matching.
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, slots.ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, slots.ErrPriceNotSet):
		return "price_not_set"
	case errors.Is(err, ErrNoCoinsInserted):
		return "no_coins_inserted"
	case errors.Is(err, ErrUnsupportedCoins):
		return "unsupported_coins"
	case errors.Is(err, ErrSoldOut):
		return "sold_out"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrChangeUnavailable), errors.Is(err, coins.ErrChangeUnavailable):
		return "no_change_available"
	default:
		return "internal"
	}
}
