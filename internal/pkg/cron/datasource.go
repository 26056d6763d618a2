package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Reloader re-reads an in-memory data source from its backing files.
type Reloader interface {
	Reload() error
}

type DataSourceJobs struct {
	reloader Reloader
	interval time.Duration
}

func NewDataSourceJobs(reloader Reloader, interval time.Duration) *DataSourceJobs {
	return &DataSourceJobs{
		reloader: reloader,
		interval: interval,
	}
}

func (j *DataSourceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reload_csv_data_source", j.interval, j.ReloadDataSource)
}

// ReloadDataSource picks up edits made to the CSV files while the server
// is running, so roster or attendance changes show up without a restart.
func (j *DataSourceJobs) ReloadDataSource(ctx context.Context) error {
	slog.Info("Cron: Starting CSV data source reload")

	if err := j.reloader.Reload(); err != nil {
		return fmt.Errorf("failed to reload data source: %w", err)
	}

	slog.Info("Cron: CSV data source reloaded")
	return nil
}
