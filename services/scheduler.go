// services/scheduler.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler runs the periodic leaderboard capture. Interval is
// SNAPSHOT_INTERVAL_MINUTES (default 5).
func (s *LeaderboardService) StartSnapshotScheduler() {
	interval := 5 * time.Minute
	if v, err := strconv.Atoi(os.Getenv("SNAPSHOT_INTERVAL_MINUTES")); err == nil && v > 0 {
		interval = time.Duration(v) * time.Minute
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			snap, err := s.Snapshot()
			if err != nil {
				log.Printf("[Scheduler] leaderboard snapshot failed: %v", err)
				return
			}
			log.Printf("[Scheduler] leaderboard snapshot %s: %d entries, report at %s",
				snap.ID, snap.EntryCount, snap.ReportURL)
		}),
	)
}
