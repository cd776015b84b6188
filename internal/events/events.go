package events

import (
	"time"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

type PurchaseInitiated struct {
	TransactionID string        `json:"transaction_id"`
	Slot          int           `json:"slot"`
	Inserted      []money.Cents `json:"inserted"`
	At            time.Time     `json:"at"`
}

func (PurchaseInitiated) Name() string { return "purchase.initiated" }

func (e PurchaseInitiated) PartitionKey() string { return e.TransactionID }

type PurchaseRejected struct {
	TransactionID string    `json:"transaction_id"`
	Slot          int       `json:"slot"`
	Kind          string    `json:"kind"`
	Reason        string    `json:"reason"`
	At            time.Time `json:"at"`
}

func (PurchaseRejected) Name() string { return "purchase.rejected" }

func (e PurchaseRejected) PartitionKey() string { return e.TransactionID }

type CoinsDeposited struct {
	TransactionID string        `json:"transaction_id"`
	Coins         []money.Cents `json:"coins"`
	Amount        money.Cents   `json:"amount"`
	At            time.Time     `json:"at"`
}

func (CoinsDeposited) Name() string { return "coins.deposited" }

func (e CoinsDeposited) PartitionKey() string { return e.TransactionID }

type DepositReversed struct {
	TransactionID string        `json:"transaction_id"`
	Coins         []money.Cents `json:"coins"`
	Amount        money.Cents   `json:"amount"`
	At            time.Time     `json:"at"`
}

func (DepositReversed) Name() string { return "coins.deposit_reversed" }

func (e DepositReversed) PartitionKey() string { return e.TransactionID }

type ProductDispensed struct {
	TransactionID string      `json:"transaction_id"`
	Slot          int         `json:"slot"`
	Price         money.Cents `json:"price"`
	Remaining     int         `json:"remaining"`
	At            time.Time   `json:"at"`
}

func (ProductDispensed) Name() string { return "product.dispensed" }

func (e ProductDispensed) PartitionKey() string { return e.TransactionID }

type ChangeReturned struct {
	TransactionID string        `json:"transaction_id"`
	Coins         []money.Cents `json:"coins"`
	Amount        money.Cents   `json:"amount"`
	At            time.Time     `json:"at"`
}

func (ChangeReturned) Name() string { return "change.returned" }

func (e ChangeReturned) PartitionKey() string { return e.TransactionID }
