// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic housekeeping the request path cannot do.
//
// # Available Jobs
//
// 1. UploadCleanupJob - Periodically removes upload directories that do not
// belong to any stored order. Customers upload an image before the order row
// is written; if the submission fails in between, the directory stays behind
// and this job reaps it once it is older than the retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uploadCleanupJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
