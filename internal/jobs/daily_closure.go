package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
)

// catchUpDays is how many past days each run re-closes. Re-running a
// closure replaces the stored rows for the day, so a missed schedule
// heals on the next tick.
const catchUpDays = 2

// ClosureJob runs the daily cash closure on a cron schedule.
type ClosureJob struct {
	treasuryService portssvc.TreasuryService
	schedule        string
	location        *time.Location
	logger          *slog.Logger
	cron            *cron.Cron
}

// NewClosureJob builds the job for the given cron schedule and IANA
// timezone name.
func NewClosureJob(treasuryService portssvc.TreasuryService, schedule, timezone string, logger *slog.Logger) (*ClosureJob, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load closure timezone %q: %w", timezone, err)
	}

	return &ClosureJob{
		treasuryService: treasuryService,
		schedule:        schedule,
		location:        location,
		logger:          logger,
	}, nil
}

// Start schedules the job. It returns once the cron runner is started.
func (j *ClosureJob) Start(ctx context.Context) error {
	j.cron = cron.New(cron.WithLocation(j.location))

	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(ctx); err != nil {
			j.logger.Error("Daily closure run failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule closure job %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Daily closure job scheduled",
		slog.String("schedule", j.schedule),
		slog.String("timezone", j.location.String()))
	return nil
}

// Stop halts the cron runner and waits for a running closure to finish.
func (j *ClosureJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

// Run closes today and the catch-up window concurrently. Each day is
// independent; the first failure is returned after all days finish.
func (j *ClosureJob) Run(ctx context.Context) error {
	now := time.Now().In(j.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	g, gctx := errgroup.WithContext(ctx)
	for offset := 0; offset <= catchUpDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		g.Go(func() error {
			closures, err := j.treasuryService.RunDailyClosure(gctx, day)
			if err != nil {
				return fmt.Errorf("close %s: %w", day.Format("2006-01-02"), err)
			}
			j.logger.Info("Daily closure completed",
				slog.String("day", day.Format("2006-01-02")),
				slog.Int("cashiers", len(closures)))
			return nil
		})
	}
	return g.Wait()
}
