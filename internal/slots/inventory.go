// Package slots owns per-slot product pricing and remaining unit
// counts for one machine.
package slots

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

var (
	ErrSlotUnavailable = errors.New("slots: slot unavailable")
	ErrPriceNotSet     = errors.New("slots: price not set")
	ErrInvalidPrice    = errors.New("slots: invalid price")
	ErrInvalidCount    = errors.New("slots: invalid count")
)

// Inventory tracks slots numbered 1..slotCount. A slot has no count
// until a price has been configured for it.
type Inventory struct {
	mu        sync.Mutex
	slotCount int
	prices    map[int]money.Cents
	counts    map[int]int
}

func NewInventory(slotCount int) (*Inventory, error) {
	if slotCount <= 0 {
		return nil, fmt.Errorf("%w: slot count %d", ErrSlotUnavailable, slotCount)
	}
	return &Inventory{
		slotCount: slotCount,
		prices:    make(map[int]money.Cents, slotCount),
		counts:    make(map[int]int, slotCount),
	}, nil
}

// IsAvailable reports whether the slot number exists on this machine,
// regardless of price or stock configuration.
func (inv *Inventory) IsAvailable(slot int) bool {
	return slot >= 1 && slot <= inv.slotCount
}

func (inv *Inventory) SlotCount() int {
	return inv.slotCount
}

func (inv *Inventory) SetPrice(slot int, price money.Cents) error {
	if !inv.IsAvailable(slot) {
		return fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slot)
	}
	if price <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.prices[slot] = price
	return nil
}

func (inv *Inventory) Price(slot int) (money.Cents, error) {
	if !inv.IsAvailable(slot) {
		return 0, fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slot)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	price, ok := inv.prices[slot]
	if !ok {
		return 0, fmt.Errorf("%w: slot %d", ErrPriceNotSet, slot)
	}
	return price, nil
}

// SetCount overwrites the remaining unit count. The slot must already
// have a price; stocking an unpriced slot is a setup error.
func (inv *Inventory) SetCount(slot, count int) error {
	if !inv.IsAvailable(slot) {
		return fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slot)
	}
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.prices[slot]; !ok {
		return fmt.Errorf("%w: slot %d", ErrPriceNotSet, slot)
	}
	inv.counts[slot] = count
	return nil
}

// Count returns the remaining units, zero if the slot was never
// stocked.
func (inv *Inventory) Count(slot int) (int, error) {
	if !inv.IsAvailable(slot) {
		return 0, fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slot)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.counts[slot], nil
}

// DispenseOne decrements the slot's count by one. The caller checks
// stock beforehand; that discipline lives in the purchase engine, not
// here.
func (inv *Inventory) DispenseOne(slot int) error {
	if !inv.IsAvailable(slot) {
		return fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slot)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.counts[slot]--
	return nil
}
