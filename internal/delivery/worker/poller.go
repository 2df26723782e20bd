// Package worker runs the agent's scheduled jobs.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"automarket/config"
	"automarket/internal/delivery"
	"automarket/internal/domain/lifecycle"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// PollerParams holds dependencies for the order poller
type PollerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	OrderUC usecase.OrderUsecase
}

type poller struct {
	cron     *cron.Cron
	schedule string
	orderUC  usecase.OrderUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
}

// NewPoller creates the paid-order poller. It checks once when served and then on every interval.
func NewPoller(params PollerParams) (delivery.Delivery, error) {
	interval := params.Cfg.Poller.Interval
	if interval <= 0 {
		return nil, errors.Errorf("poller interval must be positive, got %s", interval)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	p := &poller{
		cron:     cron.New(cron.WithLogger(cronLogger{logger: params.Logger})),
		schedule: "@every " + interval.String(),
		orderUC:  params.OrderUC,
		logger:   params.Logger,
		runCtx:   runCtx,
		cancel:   cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p, nil
}

// Serve runs the first check, starts the schedule and blocks until stopped
func (p *poller) Serve(ctx context.Context) error {
	if _, err := p.cron.AddFunc(p.schedule, p.tick); err != nil {
		return errors.Wrapf(err, "failed to schedule %q", p.schedule)
	}

	p.logger.Info("[Poller] Starting order poller", slog.String("schedule", p.schedule))
	p.tick()

	p.mu.Lock()
	if p.runCtx.Err() != nil {
		p.mu.Unlock()

		return nil
	}
	p.cron.Start()
	p.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-p.runCtx.Done():
	}

	return nil
}

func (p *poller) tick() {
	count := p.orderUC.CheckForNewOrders(p.runCtx)
	p.logger.Debug("[Poller] Check finished", slog.Int("notified", count))
}

// stop cancels in-flight checks and waits for running jobs
func (p *poller) stop(ctx context.Context) error {
	p.logger.Info("[Poller] Stopping order poller")

	p.mu.Lock()
	p.cancel()
	p.mu.Unlock()

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-p.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "poller did not stop in time")
	}
}

// cronLogger forwards cron's own logs to slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Poller] cron "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Poller] cron "+msg, append(keysAndValues, "error", err)...)
}
