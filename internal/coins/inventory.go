// Package coins owns the machine's coin float: how many physical coins
// of each accepted denomination are inside the machine.
package coins

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

var (
	ErrUnsupportedDenomination = errors.New("coins: unsupported denomination")
	ErrInvalidCount            = errors.New("coins: invalid count")
	ErrNoCoins                 = errors.New("coins: no coins of denomination")
	ErrChangeUnavailable       = errors.New("coins: change unavailable")
)

// Inventory maps each accepted denomination to its coin count. The
// denomination set is fixed at construction; counts start at zero.
type Inventory struct {
	mu     sync.Mutex
	counts map[money.Cents]int
	denoms []money.Cents // descending, for greedy change
}

func NewInventory(denominations []money.Cents) (*Inventory, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("%w: empty denomination set", ErrUnsupportedDenomination)
	}
	counts := make(map[money.Cents]int, len(denominations))
	for _, d := range denominations {
		if d <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDenomination, d)
		}
		if _, dup := counts[d]; dup {
			return nil, fmt.Errorf("%w: duplicate %s", ErrUnsupportedDenomination, d)
		}
		counts[d] = 0
	}
	denoms := append([]money.Cents(nil), denominations...)
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] > denoms[j] })
	return &Inventory{counts: counts, denoms: denoms}, nil
}

func (inv *Inventory) IsAccepted(denomination money.Cents) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	_, ok := inv.counts[denomination]
	return ok
}

// Denominations returns the accepted set, largest first.
func (inv *Inventory) Denominations() []money.Cents {
	return append([]money.Cents(nil), inv.denoms...)
}

func (inv *Inventory) SetCount(denomination money.Cents, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.counts[denomination]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDenomination, denomination)
	}
	inv.counts[denomination] = count
	return nil
}

func (inv *Inventory) Count(denomination money.Cents) (int, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	n, ok := inv.counts[denomination]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedDenomination, denomination)
	}
	return n, nil
}

func (inv *Inventory) Deposit(coin money.Cents) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.depositLocked(coin)
}

func (inv *Inventory) depositLocked(coin money.Cents) error {
	n, ok := inv.counts[coin]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDenomination, coin)
	}
	inv.counts[coin] = n + 1
	return nil
}

func (inv *Inventory) Withdraw(coin money.Cents) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.withdrawLocked(coin)
}

func (inv *Inventory) withdrawLocked(coin money.Cents) error {
	n, ok := inv.counts[coin]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDenomination, coin)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNoCoins, coin)
	}
	inv.counts[coin] = n - 1
	return nil
}

// DepositAll deposits the whole batch or none of it: an unsupported
// coin anywhere in the batch fails the call before any count changes.
func (inv *Inventory) DepositAll(coins []money.Cents) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, c := range coins {
		if _, ok := inv.counts[c]; !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedDenomination, c)
		}
	}
	for _, c := range coins {
		inv.counts[c]++
	}
	return nil
}

// WithdrawAll removes the whole batch or none of it.
func (inv *Inventory) WithdrawAll(coins []money.Cents) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	need := make(map[money.Cents]int, len(coins))
	for _, c := range coins {
		n, ok := inv.counts[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedDenomination, c)
		}
		need[c]++
		if need[c] > n {
			return fmt.Errorf("%w: %s", ErrNoCoins, c)
		}
	}
	for _, c := range coins {
		inv.counts[c]--
	}
	return nil
}

// CanMakeChange reports whether the greedy largest-first decomposition
// of amount is covered by the current float. It never mutates counts.
func (inv *Inventory) CanMakeChange(amount money.Cents) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	_, ok := inv.planChangeLocked(amount)
	return ok
}

// MakeChange withdraws and returns the greedy change coin sequence,
// largest first. If the float cannot cover the amount, nothing is
// withdrawn and ErrChangeUnavailable is returned.
func (inv *Inventory) MakeChange(amount money.Cents) ([]money.Cents, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChangeUnavailable, amount)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	plan, ok := inv.planChangeLocked(amount)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChangeUnavailable, amount)
	}
	for _, c := range plan {
		inv.counts[c]--
	}
	return plan, nil
}

// planChangeLocked computes the greedy decomposition against current
// counts without touching them. ok is true iff the remainder reaches
// exactly zero.
func (inv *Inventory) planChangeLocked(amount money.Cents) ([]money.Cents, bool) {
	if amount < 0 {
		return nil, false
	}
	remaining := amount
	var plan []money.Cents
	for _, d := range inv.denoms {
		if remaining == 0 {
			break
		}
		need := int(remaining / d)
		if need > inv.counts[d] {
			need = inv.counts[d]
		}
		for i := 0; i < need; i++ {
			plan = append(plan, d)
		}
		remaining -= d * money.Cents(need)
	}
	if remaining != 0 {
		return nil, false
	}
	return plan, true
}

// Snapshot returns a copy of the full denomination to count mapping.
func (inv *Inventory) Snapshot() map[money.Cents]int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make(map[money.Cents]int, len(inv.counts))
	for d, n := range inv.counts {
		out[d] = n
	}
	return out
}

// Balance is the total value of all coins in the float.
func (inv *Inventory) Balance() money.Cents {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	var total money.Cents
	for d, n := range inv.counts {
		total += d * money.Cents(n)
	}
	return total
}
