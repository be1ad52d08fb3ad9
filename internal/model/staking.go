package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerKey identifies a staking aggregate in the ledger mirror.
type CustomerKey struct {
	LiquidityAddress string
	DepositAddress   string
	CustomerAddress  string
}

// StakingBalance is one aggregated row of the ledger mirror: cumulative
// deposits (vin) and payouts (vout) for a customer key, 8 fractional digits.
type StakingBalance struct {
	Key  CustomerKey
	Vin  decimal.Decimal
	Vout decimal.Decimal
}

func (b StakingBalance) Available() decimal.Decimal {
	return b.Vin.Sub(b.Vout)
}

// Reservation is an approved-but-unconfirmed withdrawal amount. The tuple
// (Token, WithdrawalID, TransactionID, CustomerAddress) is unique.
type Reservation struct {
	Token           string          `json:"token"`
	WithdrawalID    int             `json:"withdrawalID"`
	TransactionID   string          `json:"transactionID"`
	CustomerAddress string          `json:"customerAddress"`
	Amount          decimal.Decimal `json:"amount"`
	CreateTime      time.Time       `json:"createTime"`
}

func (r Reservation) Age(now time.Time) time.Duration {
	return now.Sub(r.CreateTime)
}
