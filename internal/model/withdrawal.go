package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	StateOpen             = "OPEN"
	StateSignatureChecked = "SIGNATURE_CHECKED"
	StateBalanceChecked   = "BALANCE_CHECKED"
	StateWork             = "WORK"
	StateInvalid          = "INVALID"
)

// WithdrawalRequest is issued by the business API and read-only here.
type WithdrawalRequest struct {
	ID                int             `json:"id"`
	CustomerAddress   string          `json:"address"`
	Token             string          `json:"asset"`
	Amount            decimal.Decimal `json:"amount"`
	OpenTransactionID string          `json:"signTransactionId"`
}

type OpenTransaction struct {
	ID                 string          `json:"id"`
	RawTx              string          `json:"rawTx"`
	Signature          string          `json:"issuerSignature"`
	Decoded            *RawTransaction `json:"-"`
	InvalidationReason string          `json:"-"`
}

// RawTransaction is the structure returned by the node for a decoded raw tx.
type RawTransaction struct {
	TxID string   `json:"txid"`
	Vout []TxVout `json:"vout"`
}

type TxVout struct {
	Value     decimal.Decimal `json:"value"`
	Addresses []string        `json:"addresses"`
}

// PaysTo reports whether the decoded transaction has an output paying
// exactly amount to address.
func (t RawTransaction) PaysTo(address string, amount decimal.Decimal) bool {
	for _, out := range t.Vout {
		if !out.Value.Equal(amount) {
			continue
		}
		for _, a := range out.Addresses {
			if a == address {
				return true
			}
		}
	}
	return false
}

// TransactionWithdrawal joins a withdrawal request with its open
// transaction for one processing cycle. It is not persisted; the durable
// part of a decision is the reservation row.
type TransactionWithdrawal struct {
	Withdrawal  WithdrawalRequest
	Transaction OpenTransaction
	State       string
	StateReason string
}

func NewTransactionWithdrawal(w WithdrawalRequest, tx OpenTransaction) TransactionWithdrawal {
	return TransactionWithdrawal{Withdrawal: w, Transaction: tx, State: StateOpen}
}

func (t *TransactionWithdrawal) MarkSignatureChecked() {
	t.State = StateSignatureChecked
	t.StateReason = ""
}

func (t *TransactionWithdrawal) MarkBalanceChecked() {
	t.State = StateBalanceChecked
	t.StateReason = ""
}

func (t *TransactionWithdrawal) MarkInvalid(reason string) {
	t.State = StateInvalid
	t.StateReason = reason
}

func InvalidBalanceReason(withdrawalID int) string {
	return fmt.Sprintf("[Withdrawal] ID: %d - invalid balance", withdrawalID)
}
