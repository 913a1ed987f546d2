// Package scheduler runs the periodic catalog refresh.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/wynet321/fund-insight-backend/internal/service"
)

// Scheduler owns the cron instance and the catalog refresh job.
type Scheduler struct {
	cron    *cron.Cron
	catalog *service.CatalogService
	ctx     context.Context
}

// New creates a Scheduler. Cron specs use the six-field form with seconds.
func New(ctx context.Context, catalog *service.CatalogService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		catalog: catalog,
		ctx:     ctx,
	}
}

// Register schedules the catalog refresh at the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register catalog refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("scheduler started")
}

// Stop stops the cron scheduler. Running jobs finish before it returns.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("scheduler stopped")
}

// RunRefreshNow executes the catalog refresh immediately, for startup
// warm-up and manual triggers.
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("running catalog refresh")
	if err := s.catalog.Refresh(s.ctx); err != nil {
		log.Printf("catalog refresh failed: %v", err)
		return
	}
	log.Println("catalog refresh complete")
}
