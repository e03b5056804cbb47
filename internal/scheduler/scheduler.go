package scheduler

import (
	"fmt"
	"log"

	"PortfolioTracker/internal/collector"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically refreshes the collector's last-price cache while
// the interactive command loop runs.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *collector.Collector) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
	}
}

// Register adds the price-refresh task under the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, func() {
		s.Collector.Refresh()
		log.Println("[INFO] price cache refreshed")
	}); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
