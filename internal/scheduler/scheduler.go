package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"herramarket-frontdesk/internal/jobs"
	"herramarket-frontdesk/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.SweepCaches, s.jobs.SweepCaches)
	if err != nil {
		logger.Error("Failed to register SweepCaches job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.LogCacheStats, s.jobs.LogCacheStats)
	if err != nil {
		logger.Error("Failed to register LogCacheStats job", "error", err)
	}
}

// Start begins running the scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
