package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/greencart/storefront/internal/adapter/razorpay"
	"github.com/greencart/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality
// required by the reconciler.
type StorefrontFacade interface {
	PendingOnlineOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	GatewaySession(ctx context.Context, sessionID string) (*model.GatewaySession, error)
	SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error)
	ConfirmGatewayPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error)
}

// PaymentReconciler polls the payment gateway for online orders whose
// client never reported back and applies the paid transition for
// sessions the gateway settled. Orders younger than the grace period
// are left alone so the regular verification callback gets there first.
type PaymentReconciler struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	gracePeriod  time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentReconciler constructs the reconciler worker pool.
func NewPaymentReconciler(facade StorefrontFacade, pollInterval, gracePeriod time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		gracePeriod:  gracePeriod,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background reconciliation.
func (p *PaymentReconciler) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentReconciler) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PaymentReconciler) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentReconciler) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-p.gracePeriod)
	orders, err := p.facade.PendingOnlineOrders(ctx, cutoff, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending online orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *PaymentReconciler) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *PaymentReconciler) handleOrder(ctx context.Context, order model.Order) {
	if order.GatewayOrderID == nil {
		return
	}
	sessionID := *order.GatewayOrderID

	session, err := p.facade.GatewaySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, razorpay.ErrSessionNotFound) {
			p.logger.Warn("gateway session vanished",
				slog.Int64("order_id", order.ID),
				slog.String("gateway_order_id", sessionID),
			)
			return
		}
		p.logger.Error("gateway session fetch failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	if session.Status != model.GatewaySessionPaid {
		return
	}

	payments, err := p.facade.SessionPayments(ctx, sessionID)
	if err != nil {
		p.logger.Error("gateway payments fetch failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	for _, payment := range payments {
		if !payment.Captured() {
			continue
		}
		if _, err := p.facade.ConfirmGatewayPayment(ctx, order.ID, payment.ID); err != nil {
			p.logger.Error("reconciled payment confirmation failed",
				slog.Int64("order_id", order.ID),
				slog.String("payment_id", payment.ID),
				slog.String("error", err.Error()),
			)
			return
		}
		p.logger.Info("order payment reconciled from gateway",
			slog.Int64("order_id", order.ID),
			slog.String("payment_id", payment.ID),
		)
		return
	}
}
