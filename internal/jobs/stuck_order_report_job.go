package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StuckOrderReportJob periodically reports orders whose fulfillment has not
// moved for longer than the configured threshold. The job only reads and
// logs; operators decide what to do with a stalled order.
type StuckOrderReportJob struct {
	orders    ports.OrderRepository
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStuckOrderReportJob creates a new job reporting stalled orders.
// Orders untouched for longer than threshold count as stuck.
func NewStuckOrderReportJob(
	orders ports.OrderRepository,
	threshold time.Duration,
	logger *slog.Logger,
) *StuckOrderReportJob {
	return &StuckOrderReportJob{
		orders:    orders,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stuck_order_report_job"),
	}
}

// Start begins the stuck order report job to run every minute.
func (j *StuckOrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-j.threshold)

		stuck, err := j.orders.GetStuckSince(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stuck order report failed", "error", err)
			return
		}
		if len(stuck) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Orders with stalled fulfillment detected",
			"count", len(stuck), "threshold", j.threshold.String())
		for _, o := range stuck {
			j.logger.WarnContext(ctx, "Order fulfillment stalled",
				"order_id", o.ID().String(),
				"status", o.Metadata().Status().String(),
				"customer_name", o.CustomerName())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order report job started (running every minute)")
	return nil
}

// Stop stops the stuck order report job.
func (j *StuckOrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order report job stopped")
}
