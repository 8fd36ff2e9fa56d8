package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studiofit/database"
	"studiofit/services"
)

// InitializeRecurringScheduler sets up the weekly class materialization job
func InitializeRecurringScheduler() {
	log.Println("[RECURRING-SCHEDULER] Initializing recurring class scheduler...")

	c := cron.New()

	// Run every Monday at 5 AM to materialize the upcoming week's classes
	c.AddFunc("0 5 * * 1", func() {
		log.Println("[RECURRING-SCHEDULER] Running weekly class materialization...")
		RunReplication()
	})

	c.Start()
	log.Println("[RECURRING-SCHEDULER] Recurring class scheduler started - runs Mondays at 5 AM")
}

// RunReplication materializes every active template's next occurrence and logs
// the run report. Per-template failures are reported, never fatal.
func RunReplication() {
	db := database.Database.Db

	report, err := services.ReplicateUpcomingWeek(db, time.Now())
	if err != nil {
		log.Printf("[RECURRING-SCHEDULER] Replication run failed: %v", err)
		return
	}

	log.Printf("[RECURRING-SCHEDULER] Run %s: %d created, %d skipped, %d failed",
		report.RunID, report.Created, report.Skipped, len(report.Failures))
	for _, failure := range report.Failures {
		log.Printf("[RECURRING-SCHEDULER] Template %d (%s) failed: %s",
			failure.TemplateID, failure.Title, failure.Reason)
	}
}
