package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/logger"
)

// BillingScheduler generates the monthly seat charge for every tenant.
// - Runs on a fixed interval and charges each tenant once per calendar month
// - The unique (condominium, period) run record makes charging idempotent,
//   so a manual run-now overlapping the scheduled pass never double-charges
// - Tenants with an unpaid charge move to payment_pending
type BillingScheduler struct {
	condoRepo   condominium.Repository
	pricingRepo billing.PricingRepository
	ledgerRepo  billing.LedgerRepository
	logger      logger.Interface
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	interval    time.Duration
}

func NewBillingScheduler(
	condoRepo condominium.Repository,
	pricingRepo billing.PricingRepository,
	ledgerRepo billing.LedgerRepository,
	intervalHours int,
	log logger.Interface,
) *BillingScheduler {
	if intervalHours <= 0 {
		intervalHours = 24
	}
	return &BillingScheduler{
		condoRepo:   condoRepo,
		pricingRepo: pricingRepo,
		ledgerRepo:  ledgerRepo,
		logger:      log,
		stopChan:    make(chan struct{}),
		interval:    time.Duration(intervalHours) * time.Hour,
	}
}

// Start starts the scheduler loop in the background.
func (s *BillingScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting billing scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully. Safe to call multiple times.
func (s *BillingScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping billing scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("billing scheduler stopped")
	})
}

func (s *BillingScheduler) runLoop(ctx context.Context) {
	if _, err := s.RunNow(ctx, "scheduled"); err != nil {
		s.logger.Errorw("initial billing pass failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("billing scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			if _, err := s.RunNow(ctx, "scheduled"); err != nil {
				s.logger.Errorw("billing pass failed", "error", err)
			}
		}
	}
}

// RunSummary reports what one billing pass did.
type RunSummary struct {
	Period  string `json:"period"`
	Charged int    `json:"charged"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

// RunNow executes one billing pass over all tenants for the current period.
// Tenants already charged for the period are skipped via the run record.
func (s *BillingScheduler) RunNow(ctx context.Context, trigger string) (*RunSummary, error) {
	period := time.Now().UTC().Format("2006-01")
	summary := &RunSummary{Period: period}

	global, err := s.pricingRepo.GetGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load global pricing: %w", err)
	}

	page := 1
	const pageSize = 100
	for {
		condos, total, err := s.condoRepo.List(ctx, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list condominiums: %w", err)
		}

		for _, c := range condos {
			charged, err := s.chargeTenant(ctx, c, global, period, trigger)
			switch {
			case err != nil:
				summary.Failed++
				s.logger.Errorw("failed to charge tenant", "error", err, "condominium_id", c.ID(), "period", period)
			case charged:
				summary.Charged++
			default:
				summary.Skipped++
			}
		}

		if int64(page*pageSize) >= total || len(condos) == 0 {
			break
		}
		page++
	}

	s.logger.Infow("billing pass completed",
		"period", period,
		"trigger", trigger,
		"charged", summary.Charged,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (s *BillingScheduler) chargeTenant(ctx context.Context, c *condominium.Condominium, global billing.GlobalPricing, period, trigger string) (bool, error) {
	seatsUsed, err := s.condoRepo.CountActiveSeatUsers(ctx, c.ID())
	if err != nil {
		return false, fmt.Errorf("failed to count seat users: %w", err)
	}

	price := billing.ResolveSeatPrice(c.SeatPriceOverride(), global)
	amount := seatsUsed * price

	run := &billing.SchedulerRun{
		CondominiumID: c.ID(),
		Period:        period,
		AmountCents:   amount,
		Trigger:       trigger,
		RanAt:         time.Now(),
	}
	inserted, err := s.ledgerRepo.RecordRun(ctx, run)
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	tx := billing.NewTransaction(c.ID(), billing.TransactionCharge, amount, global.Currency,
		false, nil, fmt.Sprintf("monthly seat charge for %s", period))
	if err := s.ledgerRepo.Append(ctx, tx); err != nil {
		return false, err
	}

	if c.BillingStatus() == condominium.BillingActive && amount > 0 {
		if err := c.SetBillingStatus(condominium.BillingPaymentPending); err == nil {
			if err := s.condoRepo.Update(ctx, c); err != nil {
				s.logger.Warnw("failed to update billing status", "error", err, "condominium_id", c.ID())
			}
		}
	}
	return true, nil
}

// History returns past runs, newest first.
func (s *BillingScheduler) History(ctx context.Context, page, pageSize int) ([]*billing.SchedulerRun, int64, error) {
	return s.ledgerRepo.ListRuns(ctx, page, pageSize)
}

// SchedulerStatus reports operational state for the admin surface.
type SchedulerStatus struct {
	IntervalHours int        `json:"interval_hours"`
	LastRunAt     *time.Time `json:"last_run_at,omitempty"`
	LastPeriod    string     `json:"last_period,omitempty"`
}

func (s *BillingScheduler) Status(ctx context.Context) (*SchedulerStatus, error) {
	last, err := s.ledgerRepo.LastRun(ctx)
	if err != nil {
		return nil, err
	}

	status := &SchedulerStatus{IntervalHours: int(s.interval.Hours())}
	if last != nil {
		t := last.RanAt
		status.LastRunAt = &t
		status.LastPeriod = last.Period
	}
	return status, nil
}
