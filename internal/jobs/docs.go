// Package jobs provides scheduled background tasks for the shipment tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - scans for non-terminal orders past their estimated
// delivery, sets the overdue gauge and logs a warning
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	overdue := jobs.NewOverdueOrdersJob(overdueHandler, "0 */5 * * * *", m, logger)
//	jobManager := jobs.NewJobManager(overdue)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. A scan still running when the next
// tick fires causes that tick to be skipped.
//
// # Error Handling
//
// Scan failures are logged and never stop the scheduler. Failed job starts
// stop any already running jobs.
package jobs
