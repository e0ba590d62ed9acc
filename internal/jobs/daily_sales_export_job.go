package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDailySalesExportSchedule runs the export five minutes after local midnight.
const DefaultDailySalesExportSchedule = "0 5 0 * * *"

// DailySalesExporter renders one day of sales as CSV.
type DailySalesExporter interface {
	Export(ctx context.Context, query queries.GetDailySalesReportQuery) (reports.DailySalesCSV, error)
}

// DailySalesExportJob writes the previous day's sales report into a directory.
// Schedules are cron expressions with a seconds field, evaluated in the
// restaurant's timezone.
type DailySalesExportJob struct {
	exporter DailySalesExporter
	dir      string
	schedule string
	location *time.Location
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewDailySalesExportJob creates an export job. An empty schedule falls back to
// DefaultDailySalesExportSchedule.
func NewDailySalesExportJob(
	exporter DailySalesExporter,
	dir string,
	schedule string,
	location *time.Location,
	logger *slog.Logger,
) *DailySalesExportJob {
	if schedule == "" {
		schedule = DefaultDailySalesExportSchedule
	}

	return &DailySalesExportJob{
		exporter: exporter,
		dir:      dir,
		schedule: schedule,
		location: location,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:   logger.With("component", "daily_sales_export_job"),
		now:      time.Now,
	}
}

// Start registers the export on its schedule.
func (j *DailySalesExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		path, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily sales export failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Daily sales report exported", "path", path)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales export job started", "schedule", j.schedule, "dir", j.dir)
	return nil
}

// Run exports yesterday's report and returns the written file path.
func (j *DailySalesExportJob) Run(ctx context.Context) (string, error) {
	yesterday := j.now().In(j.location).AddDate(0, 0, -1).Format(queries.DateLayout)

	query, err := queries.NewGetDailySalesReportQuery(yesterday, j.location, j.now())
	if err != nil {
		return "", err
	}

	file, err := j.exporter.Export(ctx, query)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(j.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(j.dir, file.Filename)
	if err = os.WriteFile(path, file.Content, 0o644); err != nil { //nolint:gosec // reports are not secret
		return "", fmt.Errorf("write export: %w", err)
	}

	return path, nil
}

// Stop stops the job and waits for a running export to finish.
func (j *DailySalesExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily sales export job stopped")
}
