package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"problemspec/internal/domain/ports"
)

const (
	jobTimeout   = 2 * time.Minute
	stopDeadline = 5 * time.Second
)

// Job is one unit of work the App runs, such as rendering a problem.
type Job interface {
	Run(ctx context.Context) error
}

// App runs a Job once, or once and then on a cron schedule.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means run once.
func New(job Job, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the job immediately. With a schedule it keeps running the job
// on that schedule until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.job.Run(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first render immediately")
	if err := a.job.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial render failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopDeadline):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := a.job.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled render failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}
