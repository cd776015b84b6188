package machine

import (
	"github.com/google/uuid"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

type Status string

const (
	StatusInitiated      Status = "initiated"
	StatusInputValidated Status = "input_validated"
	StatusFundsValidated Status = "funds_and_change_validated"
	StatusDispensed      Status = "dispensed"
	StatusRejected       Status = "rejected"
)

// Transaction is the ephemeral state of one purchase attempt. It is
// owned by the engine for the duration of a single Purchase call.
type Transaction struct {
	ID       string
	Slot     int
	Inserted []money.Cents
	Accepted []money.Cents
	Rejected []money.Cents
	Tendered money.Cents
	Change   []money.Cents
	Status   Status
	Reason   string
}

func newTransaction(slot int, inserted []money.Cents) *Transaction {
	return &Transaction{
		ID:       uuid.NewString(),
		Slot:     slot,
		Inserted: append([]money.Cents(nil), inserted...),
		Status:   StatusInitiated,
	}
}

// Receipt is the result of a successful purchase.
type Receipt struct {
	TransactionID string
	Slot          int
	Price         money.Cents
	Tendered      money.Cents
	ChangeCoins   []money.Cents
	RejectedCoins []money.Cents
}

// Preview describes a slot and the coin float without mutating
// anything; the consumer-facing "what would I get" view.
type Preview struct {
	Slot      int
	Price     money.Cents
	Remaining int
	CoinFloat map[money.Cents]int
}
