// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron based and use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// DailySalesExportJob writes yesterday's daily sales CSV into REPORT_EXPORT_DIR.
// It runs on REPORT_EXPORT_SCHEDULE, "0 5 0 * * *" by default, evaluated in the
// restaurant's timezone.
//
// # Usage
//
//	exportJob := jobs.NewDailySalesExportJob(exporter, dir, schedule, location, logger)
//	jobManager := jobs.NewJobManager(exportJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed export is logged and retried on the next tick. A job that fails to
// start aborts start-up.
package jobs
