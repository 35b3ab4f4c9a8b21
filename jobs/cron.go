package jobs

import (
	"context"
	"time"

	"salestracker/dto"
	"salestracker/events"
	"salestracker/services/logger"

	"github.com/robfig/cron/v3"
)

// MonthlyCloseSpec runs at 01:00 on the first day of every month.
const MonthlyCloseSpec = "0 1 1 * *"

const closeTimeout = 2 * time.Minute

// MonthReporter summarizes one calendar month of revenue.
type MonthReporter interface {
	ReportMonth(ctx context.Context, month time.Time) (dto.RevenueSummary, error)
}

// MonthlyClose reports the month before now and publishes the summary.
type MonthlyClose struct {
	Reporter  MonthReporter
	Publisher events.Publisher
	Logger    logger.Logger
	Now       func() time.Time
}

// Run closes the previous calendar month.
func (j *MonthlyClose) Run(ctx context.Context) error {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	t := now()
	previous := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)

	summary, err := j.Reporter.ReportMonth(ctx, previous)
	if err != nil {
		j.Logger.Error("monthly revenue close failed", "month", previous.Format("2006-01"), "error", err)
		return err
	}
	j.Logger.Info("monthly revenue closed",
		"month", summary.FromMonth,
		"total", summary.TotalSaleRevenue.StringFixed(2),
		"sales", summary.NumberOfSales,
		"average", summary.AverageRevenueBySales.StringFixed(2))

	if err := j.Publisher.Publish(ctx, events.New(events.RevenueMonthClosed, summary)); err != nil {
		j.Logger.Warn("monthly revenue event not published", "month", summary.FromMonth, "error", err)
	}
	return nil
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, job *MonthlyClose) error {
	_, err := c.AddFunc(MonthlyCloseSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = job.Run(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	job.Logger.Info("Cron jobs initialized successfully", "monthly_close", MonthlyCloseSpec)
	return nil
}
