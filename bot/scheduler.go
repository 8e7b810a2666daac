package bot

import (
	"log"

	"starboard-bot/scanner"

	"github.com/robfig/cron/v3"
)

var c *cron.Cron

// startScheduler starts the repeating scan cycle when the polling variant is
// enabled. One cron tick runs one full priority pass; there is no busy loop
// between ticks.
func startScheduler(b *Bot) {
	if !b.Settings.Scan.Enabled {
		log.Println("Channel scanning is disabled, skipping scheduler.")
		return
	}

	log.Println("Initializing scan scheduler...")
	c = cron.New()
	_, err := c.AddFunc(b.Settings.Scan.Schedule, func() {
		scanner.RunCycle(b.Session, b.Orchestrator, &b.Settings.Starboard, b.Settings.Scan.PageSize)
	})
	if err != nil {
		log.Fatalf("Could not set up scan schedule %q: %v", b.Settings.Scan.Schedule, err)
	}
	c.Start()
	log.Printf("Scan cycle scheduled with %q.", b.Settings.Scan.Schedule)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
