package service

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"parkingslots/internal/entities"
	"parkingslots/internal/logger"
	"parkingslots/internal/metrics"
)

// JobService runs periodic read-only jobs against the slot inventory.
type JobService struct {
	Slots   *SlotService
	metrics metrics.Recorder
	log     logger.Logger
}

func NewJobService(slots *SlotService, rec metrics.Recorder, log logger.Logger) *JobService {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &JobService{Slots: slots, metrics: rec, log: log}
}

// SnapshotOccupancy logs the current counts and refreshes the gauges.
func (s *JobService) SnapshotOccupancy() entities.Stats {
	stats := s.Slots.GetStats()
	s.metrics.RecordStats(stats)
	s.log.Debugw("Cron Job: occupancy snapshot", map[string]any{
		"total":     stats.Total,
		"available": stats.Available,
		"occupied":  stats.Occupied,
	})
	return stats
}

// Schedule registers SnapshotOccupancy on c using a standard cron spec or a
// descriptor such as "@every 1m".
func (s *JobService) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() { s.SnapshotOccupancy() })
	if err != nil {
		return 0, fmt.Errorf("cron job: invalid schedule %q: %w", spec, err)
	}
	s.log.Infof("Cron Job: occupancy snapshot scheduled (%s)", spec)
	return id, nil
}
