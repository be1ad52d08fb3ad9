package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stakebridge/stakebridge/internal"
	mock_internal "github.com/stakebridge/stakebridge/internal/mock"
	"github.com/stakebridge/stakebridge/internal/model"
)

var _ = Describe("Pipeline", func() {
	var (
		pipeline *internal.Pipeline
		api      *mock_internal.MockIAPIClient
		node     *mock_internal.MockINodeClient
		checker  *mock_internal.MockIBalanceChecker
		ctx      context.Context
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		api = mock_internal.NewMockIAPIClient(ctrl)
		node = mock_internal.NewMockINodeClient(ctrl)
		checker = mock_internal.NewMockIBalanceChecker(ctrl)
		ctx = context.Background()

		pipeline = internal.NewPipeline(api, node, checker, logger.Sugar(), "issuer1")
	})

	withdrawal := model.WithdrawalRequest{
		ID:                7,
		CustomerAddress:   "cust1",
		Token:             "DFI",
		Amount:            decimal.RequireFromString("150.00000000"),
		OpenTransactionID: "tx-7",
	}
	transaction := model.OpenTransaction{ID: "tx-7", RawTx: "00ab", Signature: "sig"}
	decoded := model.RawTransaction{
		TxID: "chain-tx-7",
		Vout: []model.TxVout{{
			Value:     decimal.RequireFromString("150.00000000"),
			Addresses: []string{"cust1"},
		}},
	}

	Context("Pipeline tests", func() {
		It("verifies a withdrawal that passes every stage", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{transaction}, nil)
			node.EXPECT().DecodeRawTransaction(ctx, "00ab").Return(decoded, nil)
			node.EXPECT().VerifyMessage(ctx, "issuer1", "sig", "chain-tx-7").Return(true, nil)
			checker.EXPECT().CheckBalances(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, items []*model.TransactionWithdrawal) ([]*model.TransactionWithdrawal, error) {
					Expect(items).To(HaveLen(1))
					Expect(items[0].State).To(Equal(model.StateSignatureChecked))
					items[0].MarkBalanceChecked()
					return items, nil
				})
			api.EXPECT().ReportVerified(ctx, "tx-7", "sig").Return(nil)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("invalidates a transaction with an empty raw tx", func() {
			tx := transaction
			tx.RawTx = ""

			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{tx}, nil)
			api.EXPECT().ReportInvalidated(ctx, "tx-7", gomock.Any()).DoAndReturn(
				func(_ context.Context, _, reason string) error {
					Expect(reason).To(ContainSubstring("raw transaction is empty"))
					return nil
				})
			checker.EXPECT().CheckBalances(ctx, gomock.Any()).Return(nil, nil)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("invalidates a transaction that pays the wrong amount", func() {
			wrong := decoded
			wrong.Vout = []model.TxVout{{
				Value:     decimal.RequireFromString("149.99999999"),
				Addresses: []string{"cust1"},
			}}

			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{transaction}, nil)
			node.EXPECT().DecodeRawTransaction(ctx, "00ab").Return(wrong, nil)
			api.EXPECT().ReportInvalidated(ctx, "tx-7", gomock.Any()).DoAndReturn(
				func(_ context.Context, _, reason string) error {
					Expect(reason).To(ContainSubstring("does not pay the expected customer amount"))
					return nil
				})
			checker.EXPECT().CheckBalances(ctx, gomock.Any()).Return(nil, nil)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("invalidates a transaction with a bad issuer signature", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{transaction}, nil)
			node.EXPECT().DecodeRawTransaction(ctx, "00ab").Return(decoded, nil)
			node.EXPECT().VerifyMessage(ctx, "issuer1", "sig", "chain-tx-7").Return(false, nil)
			api.EXPECT().ReportInvalidated(ctx, "tx-7", gomock.Any()).Return(nil)
			checker.EXPECT().CheckBalances(ctx, gomock.Any()).Return(nil, nil)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("reports a balance rejection exactly once", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{transaction}, nil)
			node.EXPECT().DecodeRawTransaction(ctx, "00ab").Return(decoded, nil)
			node.EXPECT().VerifyMessage(ctx, "issuer1", "sig", "chain-tx-7").Return(true, nil)
			checker.EXPECT().CheckBalances(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, items []*model.TransactionWithdrawal) ([]*model.TransactionWithdrawal, error) {
					items[0].MarkInvalid(model.InvalidBalanceReason(items[0].Withdrawal.ID))
					return nil, nil
				})
			api.EXPECT().ReportInvalidated(ctx, "tx-7", "[Withdrawal] ID: 7 - invalid balance").Return(nil).Times(1)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("aborts the run on an infrastructure failure without reporting", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return([]model.OpenTransaction{transaction}, nil)
			node.EXPECT().DecodeRawTransaction(ctx, "00ab").Return(model.RawTransaction{}, errors.New("connection refused"))

			err := pipeline.Run(ctx)
			Expect(err).Should(HaveOccurred())
		})
		It("skips withdrawals without a matching open transaction", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return([]model.WithdrawalRequest{withdrawal}, nil)
			api.EXPECT().FetchOpenTransactions(ctx).Return(nil, nil)

			Expect(pipeline.Run(ctx)).To(Succeed())
		})
		It("fails fast when the business API is unreachable", func() {
			api.EXPECT().FetchPendingWithdrawals(ctx).Return(nil, errors.New("some error"))

			err := pipeline.Run(ctx)
			Expect(err).Should(HaveOccurred())
		})
	})
})
