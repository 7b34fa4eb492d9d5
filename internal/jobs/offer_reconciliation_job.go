package jobs

import (
	"context"
	"log/slog"

	"dealership/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every five minutes.
const DefaultReconcileSchedule = "0 */5 * * * *"

type driftFinder interface {
	Handle(ctx context.Context, query queries.GetOfferStatusDriftQuery) ([]queries.OfferStatusDrift, error)
}

// OfferReconciliationJob reports offers whose status no longer matches their
// orders. It only logs; fixing the data is left to an operator.
type OfferReconciliationJob struct {
	finder   driftFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOfferReconciliationJob(finder driftFinder, schedule string, logger *slog.Logger) *OfferReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &OfferReconciliationJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "offer_reconciliation_job"),
	}
}

// Start schedules the job. The schedule uses the six-field cron format with seconds.
func (j *OfferReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one reconciliation pass and returns the number of drifted offers.
func (j *OfferReconciliationJob) Run(ctx context.Context) int {
	drifts, err := j.finder.Handle(ctx, queries.NewGetOfferStatusDriftQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer reconciliation job failed", "error", err)
		return 0
	}

	for _, d := range drifts {
		j.logger.WarnContext(ctx, "Offer status drift",
			"offer_id", d.OfferID.String(),
			"status", d.Actual.String(),
			"expected", d.Expected.String(),
		)
	}

	return len(drifts)
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OfferReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Offer reconciliation job stopped")
}
