// Package scheduler drives the periodic expiry sweep. The sweep is an
// independent control loop: it runs on a fixed cadence regardless of request
// traffic, and a single cron entry never overlaps itself.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"marketplace/internal/service"
)

// Scheduler runs the item expiration sweep on a cron cadence.
type Scheduler struct {
	sched *cron.Cron
	items service.ItemService
	spec  string
}

// New creates a scheduler. spec is a standard 5-field cron line; the default
// configuration sweeps at minute 1 of every hour.
func New(items service.ItemService, spec string) *Scheduler {
	return &Scheduler{
		sched: cron.New(),
		items: items,
		spec:  spec,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.sched.AddFunc(s.spec, s.runSweep); err != nil {
		return err
	}
	s.sched.Start()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.sched.Stop().Done()
}

func (s *Scheduler) runSweep() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error("expiry sweep panic: ", err)
		}
	}()

	expired, err := s.items.ExpireOverdueItems(context.Background())
	if err != nil {
		zap.L().Error("expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		zap.L().Info("expiry sweep done", zap.Int("expired", expired))
	}
}
