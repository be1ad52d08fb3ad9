package internal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/stakebridge/stakebridge/internal/model"
)

// Pipeline drives one withdrawal through
// OPEN -> SIGNATURE_CHECKED -> BALANCE_CHECKED and reports the terminal
// outcome to the business API exactly once per cycle. Anything after
// BALANCE_CHECKED (signing, broadcast) belongs to the issuer side.
type Pipeline struct {
	api           IAPIClient
	node          INodeClient
	checker       IBalanceChecker
	logger        *zap.SugaredLogger
	issuerAddress string
}

func NewPipeline(api IAPIClient, node INodeClient, checker IBalanceChecker, logger *zap.SugaredLogger, issuerAddress string) *Pipeline {
	return &Pipeline{
		api:           api,
		node:          node,
		checker:       checker,
		logger:        logger,
		issuerAddress: issuerAddress,
	}
}

// signatureOutcome is the immutable result of the signature stage for one
// item: either the decoded transaction or a rejection reason.
type signatureOutcome struct {
	decoded  model.RawTransaction
	rejected bool
	reason   string
}

func (p Pipeline) Run(ctx context.Context) error {
	withdrawals, err := p.api.FetchPendingWithdrawals(ctx)
	if err != nil {
		return err
	}
	transactions, err := p.api.FetchOpenTransactions(ctx)
	if err != nil {
		return err
	}

	items := p.matchPairs(withdrawals, transactions)
	if len(items) == 0 {
		return nil
	}

	reported := map[string]bool{}

	var signatureChecked []*model.TransactionWithdrawal
	for _, item := range items {
		outcome, err := p.checkSignature(ctx, item)
		if err != nil {
			// Infrastructure failure: abort the run, nothing is reported;
			// the next scheduled run retries from scratch.
			return err
		}

		if outcome.rejected {
			item.MarkInvalid(outcome.reason)
			p.reportInvalidated(ctx, reported, item)
			continue
		}

		item.Transaction.Decoded = &outcome.decoded
		item.MarkSignatureChecked()
		signatureChecked = append(signatureChecked, item)
	}

	approved, err := p.checker.CheckBalances(ctx, signatureChecked)
	if err != nil {
		return err
	}

	for _, item := range signatureChecked {
		if item.State == model.StateInvalid {
			p.reportInvalidated(ctx, reported, item)
		}
	}

	for _, item := range approved {
		if reported[item.Transaction.ID] {
			continue
		}
		reported[item.Transaction.ID] = true

		if err := p.api.ReportVerified(ctx, item.Transaction.ID, item.Transaction.Signature); err != nil {
			p.logger.Errorf("report verified %s: %s", item.Transaction.ID, err)
			continue
		}
		p.logger.Infow("withdrawal verified",
			"withdrawalID", item.Withdrawal.ID,
			"transactionID", item.Transaction.ID,
			"amount", item.Withdrawal.Amount.StringFixed(8),
		)
	}

	return nil
}

// matchPairs joins pending withdrawals with their open transactions,
// keeping the withdrawal order of the API. A withdrawal without its
// transaction (or vice versa) is simply not processed this cycle.
func (p Pipeline) matchPairs(withdrawals []model.WithdrawalRequest, transactions []model.OpenTransaction) []*model.TransactionWithdrawal {
	byID := make(map[string]model.OpenTransaction, len(transactions))
	for _, tx := range transactions {
		byID[tx.ID] = tx
	}

	var items []*model.TransactionWithdrawal
	for _, w := range withdrawals {
		tx, ok := byID[w.OpenTransactionID]
		if !ok {
			continue
		}
		item := model.NewTransactionWithdrawal(w, tx)
		items = append(items, &item)
	}
	return items
}

// checkSignature validates structure and issuer signature of one open
// transaction. Malformed data rejects the item; only transport-level
// failures return an error.
func (p Pipeline) checkSignature(ctx context.Context, item *model.TransactionWithdrawal) (signatureOutcome, error) {
	rejection := func(reason string) signatureOutcome {
		return signatureOutcome{rejected: true, reason: fmt.Sprintf("[Transaction] ID: %s - %s", item.Transaction.ID, reason)}
	}

	if item.Transaction.RawTx == "" {
		return rejection(ErrEmptyRawTx.Error()), nil
	}
	if item.Transaction.Signature == "" {
		return rejection(ErrEmptySignature.Error()), nil
	}

	decoded, err := p.node.DecodeRawTransaction(ctx, item.Transaction.RawTx)
	if errors.Is(err, ErrRPCFailed) {
		return rejection("cannot decode raw transaction"), nil
	}
	if err != nil {
		return signatureOutcome{}, err
	}

	if !decoded.PaysTo(item.Withdrawal.CustomerAddress, item.Withdrawal.Amount) {
		return rejection(ErrPayoutMismatch.Error()), nil
	}

	ok, err := p.node.VerifyMessage(ctx, p.issuerAddress, item.Transaction.Signature, decoded.TxID)
	if errors.Is(err, ErrRPCFailed) {
		return rejection(ErrSignatureInvalid.Error()), nil
	}
	if err != nil {
		return signatureOutcome{}, err
	}
	if !ok {
		return rejection(ErrSignatureInvalid.Error()), nil
	}

	return signatureOutcome{decoded: decoded}, nil
}

func (p Pipeline) reportInvalidated(ctx context.Context, reported map[string]bool, item *model.TransactionWithdrawal) {
	if reported[item.Transaction.ID] {
		return
	}
	reported[item.Transaction.ID] = true

	if err := p.api.ReportInvalidated(ctx, item.Transaction.ID, item.StateReason); err != nil {
		p.logger.Errorf("report invalidated %s: %s", item.Transaction.ID, err)
		return
	}
	p.logger.Infow("withdrawal invalidated",
		"withdrawalID", item.Withdrawal.ID,
		"transactionID", item.Transaction.ID,
		"reason", item.StateReason,
	)
}
