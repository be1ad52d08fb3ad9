package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stakebridge/stakebridge/internal"
	mock_internal "github.com/stakebridge/stakebridge/internal/mock"
	"github.com/stakebridge/stakebridge/internal/model"
)

var _ = Describe("Reconciler", func() {
	var (
		reconciler *internal.Reconciler
		rep        *mock_internal.MockIRepository
		alerts     *mock_internal.MockIAlertSink
		ctx        context.Context
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		alerts = mock_internal.NewMockIAlertSink(ctrl)
		ctx = context.Background()

		reconciler = internal.NewReconciler(rep, alerts, logger.Sugar(), 24*time.Hour)
	})
	Context("Reconciler tests", func() {
		reservation := func(age time.Duration) model.Reservation {
			return model.Reservation{
				Token:           "DFI",
				WithdrawalID:    7,
				TransactionID:   "tx-7",
				CustomerAddress: "cust1",
				Amount:          decimal.RequireFromString("150.00000000"),
				CreateTime:      time.Now().Add(-age),
			}
		}

		It("deletes a reservation once its transaction is confirmed", func() {
			res := reservation(48 * time.Hour)

			rep.EXPECT().Reservations(ctx, "DFI").Return([]model.Reservation{res}, nil)
			rep.EXPECT().IsTransactionConfirmed(ctx, "tx-7").Return(true, nil)
			rep.EXPECT().DeleteReservation(ctx, res).Return(nil)

			err := reconciler.Reconcile(ctx, "DFI")
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("alerts on a stale reservation but keeps it", func() {
			res := reservation(25 * time.Hour)

			rep.EXPECT().Reservations(ctx, "DFI").Return([]model.Reservation{res}, nil)
			rep.EXPECT().IsTransactionConfirmed(ctx, "tx-7").Return(false, nil)
			alerts.EXPECT().Publish(gomock.Any()).Do(func(msg string) {
				Expect(msg).To(ContainSubstring("token DFI"))
				Expect(msg).To(ContainSubstring("withdrawal 7"))
				Expect(msg).To(ContainSubstring("transaction tx-7"))
				Expect(msg).To(ContainSubstring("customer cust1"))
				Expect(msg).To(ContainSubstring("amount 150.00000000"))
			})

			err := reconciler.Reconcile(ctx, "DFI")
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("leaves a young unconfirmed reservation untouched", func() {
			res := reservation(time.Hour)

			rep.EXPECT().Reservations(ctx, "DFI").Return([]model.Reservation{res}, nil)
			rep.EXPECT().IsTransactionConfirmed(ctx, "tx-7").Return(false, nil)

			err := reconciler.Reconcile(ctx, "DFI")
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("propagates storage errors", func() {
			rep.EXPECT().Reservations(ctx, "DFI").Return(nil, errors.New("some error"))

			err := reconciler.Reconcile(ctx, "DFI")
			Expect(err).Should(HaveOccurred())
		})
	})
})
