// File: internal/jobs/marketplace_expiry.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/marketplace"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MarketplaceExpiryJob periodically marks stale marketplace items as EXPIRED.
type MarketplaceExpiryJob struct {
	marketplaceService *marketplace.Service
	logger             *zap.Logger
	cfg                *config.Config
	cronScheduler      *cron.Cron
}

// NewMarketplaceExpiryJob creates a new MarketplaceExpiryJob.
func NewMarketplaceExpiryJob(
	marketplaceService *marketplace.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *MarketplaceExpiryJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &MarketplaceExpiryJob{
		marketplaceService: marketplaceService,
		logger:             logger.Named("MarketplaceExpiryJob"),
		cfg:                cfg,
		cronScheduler:      scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *MarketplaceExpiryJob) SetupAndStart() error {
	jobSpec := j.cfg.MarketplaceExpiryJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Marketplace expiry job schedule not defined (MARKETPLACE_EXPIRY_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule marketplace expiry job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Marketplace expiry job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *MarketplaceExpiryJob) runJob() {
	j.logger.Info("Starting marketplace expiry job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	lifespan := time.Duration(j.cfg.MarketplaceItemLifespanDays) * 24 * time.Hour
	expiredCount, err := j.marketplaceService.ExpireStaleItems(ctx, lifespan)
	if err != nil {
		j.logger.Error("Marketplace expiry job run failed", zap.Error(err))
	} else {
		j.logger.Info("Marketplace expiry job run completed", zap.Int64("items_expired", expiredCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *MarketplaceExpiryJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping marketplace expiry job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Marketplace expiry job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Marketplace expiry job scheduler stop timed out.")
		}
	}
}

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
