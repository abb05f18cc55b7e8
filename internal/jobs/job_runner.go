package jobs

import (
	"herramarket-frontdesk/internal/cache"
	"herramarket-frontdesk/internal/config"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/logger"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	reservations *cache.TTLCache[*domain.Reservation]
	clientNames  *cache.TTLCache[string]
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(reservations *cache.TTLCache[*domain.Reservation], clientNames *cache.TTLCache[string], cfg *config.Config) *JobRunner {
	return &JobRunner{
		reservations: reservations,
		clientNames:  clientNames,
		config:       cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SweepCaches evicts expired entries from the resolver caches so they do
// not sit at capacity between payment searches.
func (jr *JobRunner) SweepCaches() {
	jr.runWithRecovery("SweepCaches", func() {
		reservations := jr.reservations.Sweep()
		clients := jr.clientNames.Sweep()
		if reservations > 0 || clients > 0 {
			logger.Info("Swept resolver caches",
				"reservations_evicted", reservations,
				"client_names_evicted", clients)
		}
	})
}

// LogCacheStats logs the current cache sizes
func (jr *JobRunner) LogCacheStats() {
	jr.runWithRecovery("LogCacheStats", func() {
		logger.Info("Resolver cache stats",
			"reservations", jr.reservations.Len(),
			"client_names", jr.clientNames.Len())
	})
}
