package test

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stakebridge/stakebridge/internal"
)

var _ = Describe("Scheduler", func() {
	var scheduler *internal.Scheduler

	BeforeEach(func() {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		scheduler = internal.NewScheduler(2, logger.Sugar())
	})
	Context("Scheduler tests", func() {
		It("runs a task repeatedly until shutdown", func() {
			var runs int64

			scheduler.Start(&internal.Task{
				Name:     "counter",
				Interval: 5 * time.Millisecond,
				Run: func(context.Context) error {
					atomic.AddInt64(&runs, 1)
					return nil
				},
			})

			Eventually(func() int64 {
				return atomic.LoadInt64(&runs)
			}, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 3))

			scheduler.Shutdown(time.Second)
		})
		It("does not overlap runs of the same task", func() {
			var active, maxActive int64

			scheduler.Start(&internal.Task{
				Name:     "slow",
				Interval: 5 * time.Millisecond,
				Run: func(context.Context) error {
					n := atomic.AddInt64(&active, 1)
					if n > atomic.LoadInt64(&maxActive) {
						atomic.StoreInt64(&maxActive, n)
					}
					time.Sleep(20 * time.Millisecond)
					atomic.AddInt64(&active, -1)
					return nil
				},
			})

			time.Sleep(150 * time.Millisecond)
			scheduler.Shutdown(time.Second)

			Expect(atomic.LoadInt64(&maxActive)).To(Equal(int64(1)))
		})
		It("waits for an in-flight run on shutdown", func() {
			var finished int64

			scheduler.Start(&internal.Task{
				Name:     "graceful",
				Interval: 5 * time.Millisecond,
				Run: func(context.Context) error {
					time.Sleep(30 * time.Millisecond)
					atomic.AddInt64(&finished, 1)
					return nil
				},
			})

			time.Sleep(20 * time.Millisecond)
			scheduler.Shutdown(time.Second)

			Expect(atomic.LoadInt64(&finished)).To(BeNumerically(">=", 1))
		})
		It("keeps the run context live through a graceful shutdown", func() {
			started := make(chan struct{}, 1)
			var ctxErr atomic.Value

			scheduler.Start(&internal.Task{
				Name:     "straddler",
				Interval: 5 * time.Millisecond,
				Run: func(ctx context.Context) error {
					select {
					case started <- struct{}{}:
					default:
					}
					time.Sleep(50 * time.Millisecond)
					ctxErr.Store(ctx.Err() == nil)
					return nil
				},
			})

			// Shut down while a run is in flight; the run must finish
			// with its context still uncancelled.
			Eventually(started, time.Second).Should(Receive())
			scheduler.Shutdown(time.Second)

			Expect(ctxErr.Load()).To(Equal(true))
		})
		It("cancels in-flight runs once the shutdown wait expires", func() {
			var sawCancel int64
			started := make(chan struct{}, 1)

			scheduler.Start(&internal.Task{
				Name:     "stuck",
				Interval: 5 * time.Millisecond,
				Run: func(ctx context.Context) error {
					select {
					case started <- struct{}{}:
					default:
					}
					<-ctx.Done()
					atomic.AddInt64(&sawCancel, 1)
					return ctx.Err()
				},
			})

			Eventually(started, time.Second).Should(Receive())
			scheduler.Shutdown(10 * time.Millisecond)

			Eventually(func() int64 {
				return atomic.LoadInt64(&sawCancel)
			}, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 1))
		})
		It("survives a panicking task", func() {
			var runs int64

			scheduler.Start(&internal.Task{
				Name:     "panicky",
				Interval: 5 * time.Millisecond,
				Run: func(context.Context) error {
					atomic.AddInt64(&runs, 1)
					panic("boom")
				},
			})

			Eventually(func() int64 {
				return atomic.LoadInt64(&runs)
			}, time.Second, 5*time.Millisecond).Should(BeNumerically(">=", 2))

			scheduler.Shutdown(time.Second)
		})
	})
})
