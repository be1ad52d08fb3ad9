package internal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type IReconciler interface {
	Reconcile(context.Context, string) error
}

// Reconciler frees reserved funds once the chain proves the withdrawal
// happened. It never frees funds on a timeout: a stale reservation is
// escalated to an operator and keeps suppressing the balance.
type Reconciler struct {
	repository IRepository
	alerts     IAlertSink
	logger     *zap.SugaredLogger
	staleAfter time.Duration
}

func NewReconciler(repository IRepository, alerts IAlertSink, logger *zap.SugaredLogger, staleAfter time.Duration) *Reconciler {
	return &Reconciler{
		repository: repository,
		alerts:     alerts,
		logger:     logger,
		staleAfter: staleAfter,
	}
}

func (s Reconciler) Reconcile(ctx context.Context, token string) error {
	reservations, err := s.repository.Reservations(ctx, token)
	if err != nil {
		return err
	}

	for _, res := range reservations {
		confirmed, err := s.repository.IsTransactionConfirmed(ctx, res.TransactionID)
		if err != nil {
			return err
		}

		if confirmed {
			// The payout is now part of the ledger's vout; keeping the
			// reservation would subtract the same amount twice.
			if err = s.repository.DeleteReservation(ctx, res); err != nil {
				return err
			}
			s.logger.Infow("reservation confirmed on-chain",
				"withdrawalID", res.WithdrawalID,
				"transactionID", res.TransactionID,
				"amount", res.Amount.StringFixed(8),
			)
			continue
		}

		if res.Age(time.Now()) > s.staleAfter {
			msg := fmt.Sprintf("[Reservation] stale for over %s: token %s, withdrawal %d, transaction %s, customer %s, amount %s",
				s.staleAfter, res.Token, res.WithdrawalID, res.TransactionID, res.CustomerAddress, res.Amount.StringFixed(8))
			s.alerts.Publish(msg)
		}
	}

	return nil
}
