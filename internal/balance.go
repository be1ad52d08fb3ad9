package internal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stakebridge/stakebridge/internal/model"
)

// reservationKey is the natural unique key of a reservation.
type reservationKey struct {
	token           string
	withdrawalID    int
	transactionID   string
	customerAddress string
}

type IBalanceChecker interface {
	CheckBalances(context.Context, []*model.TransactionWithdrawal) ([]*model.TransactionWithdrawal, error)
}

// BalanceChecker authorizes withdrawal requests against verified staking
// balances and reserves approved amounts so the same funds cannot back a
// second approval.
type BalanceChecker struct {
	repository       IRepository
	logger           *zap.SugaredLogger
	liquidityAddress string
	depositAddress   string
	token            string
}

func NewBalanceChecker(repository IRepository, logger *zap.SugaredLogger, liquidityAddress, depositAddress, token string) *BalanceChecker {
	return &BalanceChecker{
		repository:       repository,
		logger:           logger,
		liquidityAddress: liquidityAddress,
		depositAddress:   depositAddress,
		token:            token,
	}
}

// CheckBalances processes the batch in input order and returns the approved
// subset, order preserved. Balance consumed by an approval earlier in the
// batch is unavailable to later requests of the same customer. All
// reservation writes commit once at the end; on any storage error nothing
// is committed and no item is reported approved.
func (s BalanceChecker) CheckBalances(ctx context.Context, withdrawals []*model.TransactionWithdrawal) ([]*model.TransactionWithdrawal, error) {
	if len(withdrawals) == 0 {
		return nil, nil
	}

	tx, err := s.repository.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			if rErr := tx.Rollback(); rErr != nil {
				s.logger.Errorf("rollback balance check: %s", rErr)
			}
		}
	}()

	baseSpendable := map[string]decimal.Decimal{}
	consumed := map[string]decimal.Decimal{}
	reservedByBatch := map[reservationKey]bool{}

	var approved []*model.TransactionWithdrawal
	for _, w := range withdrawals {
		customer := w.Withdrawal.CustomerAddress

		base, ok := baseSpendable[customer]
		if !ok {
			// Serialize on the customer before the first read: without the
			// lock two overlapping cycles could both see a stale reserved
			// sum and approve distinct withdrawals past the real balance.
			if err = tx.LockCustomer(ctx, customer); err != nil {
				return nil, err
			}
			base, err = s.spendableNow(ctx, tx, customer)
			if err != nil {
				return nil, err
			}
			baseSpendable[customer] = base
		}
		spendable := base.Sub(consumed[customer])

		res := model.Reservation{
			Token:           s.token,
			WithdrawalID:    w.Withdrawal.ID,
			TransactionID:   w.Transaction.ID,
			CustomerAddress: customer,
			Amount:          w.Withdrawal.Amount,
			CreateTime:      time.Now().UTC(),
		}
		key := reservationKey{
			token:           res.Token,
			withdrawalID:    res.WithdrawalID,
			transactionID:   res.TransactionID,
			customerAddress: res.CustomerAddress,
		}

		// A duplicate of an item approved earlier in this batch, or an item
		// reserved in an earlier cycle, is a success: its amount is already
		// accounted for and must not be rejected or counted twice.
		if reservedByBatch[key] {
			w.MarkBalanceChecked()
			approved = append(approved, w)
			continue
		}
		exists, err := tx.HasReservation(ctx, res)
		if err != nil {
			return nil, err
		}
		if exists {
			reservedByBatch[key] = true
			w.MarkBalanceChecked()
			approved = append(approved, w)
			continue
		}

		if w.Withdrawal.Amount.GreaterThan(spendable) {
			w.MarkInvalid(model.InvalidBalanceReason(w.Withdrawal.ID))
			s.logger.Infow("withdrawal rejected",
				"withdrawalID", w.Withdrawal.ID,
				"customer", customer,
				"requested", w.Withdrawal.Amount.StringFixed(8),
				"spendable", spendable.StringFixed(8),
			)
			continue
		}

		created, err := tx.InsertReservation(ctx, res)
		if err != nil {
			return nil, err
		}
		if !created {
			// Lost a race with a concurrent cycle; the unique key absorbed
			// the duplicate and the amount is already reserved.
			s.logger.Infow("withdrawal already reserved",
				"withdrawalID", w.Withdrawal.ID,
				"transactionID", w.Transaction.ID,
			)
		}
		// The amount is promised either way: the row committed by the racing
		// cycle postdates this transaction's reserved-sum read, so the rest
		// of the batch must still see the reduced spendable.
		consumed[customer] = consumed[customer].Add(w.Withdrawal.Amount)

		reservedByBatch[key] = true
		w.MarkBalanceChecked()
		approved = append(approved, w)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	return approved, nil
}

// spendableNow is the ledger balance minus everything promised in earlier
// cycles. It is read once per customer, before any insert of this batch
// touches that customer, so in-batch consumption is tracked exclusively by
// the caller and never double-subtracted through the reserved sum.
func (s BalanceChecker) spendableNow(ctx context.Context, tx IReservationTx, customerAddress string) (decimal.Decimal, error) {
	balance, err := tx.AvailableBalance(ctx, model.CustomerKey{
		LiquidityAddress: s.liquidityAddress,
		DepositAddress:   s.depositAddress,
		CustomerAddress:  customerAddress,
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	reserved, err := tx.ReservedAmount(ctx, s.token, customerAddress)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return balance.Sub(reserved), nil
}
