package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"parkingslots/internal/entities"
)

// Outcome labels for slot operations.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// Recorder is what the slot service reports to.
type Recorder interface {
	RecordOperation(op, outcome string)
	RecordStats(stats entities.Stats)
	RecordPersistFailure(op string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordOperation(string, string) {}
func (NopRecorder) RecordStats(entities.Stats)     {}
func (NopRecorder) RecordPersistFailure(string)    {}

// PromSink records slot operations and inventory levels in Prometheus metrics.
type PromSink struct {
	operations      *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	slots           *prometheus.GaugeVec
}

// NewPromSink registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_slot_operations_total",
		Help: "Slot operations by kind and outcome",
	}, []string{"operation", "outcome"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_slot_persist_failures_total",
		Help: "Failed saves of the slot list",
	}, []string{"operation"})
	slots := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "parking_slots",
		Help: "Registered slots by state",
	}, []string{"state"})

	var err error
	if operations, err = register(reg, operations); err != nil {
		return nil, err
	}
	if persistFailures, err = register(reg, persistFailures); err != nil {
		return nil, err
	}
	if slots, err = register(reg, slots); err != nil {
		return nil, err
	}
	return &PromSink{operations: operations, persistFailures: persistFailures, slots: slots}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (s *PromSink) RecordOperation(op, outcome string) {
	s.operations.WithLabelValues(op, outcome).Inc()
}

func (s *PromSink) RecordStats(stats entities.Stats) {
	s.slots.WithLabelValues("total").Set(float64(stats.Total))
	s.slots.WithLabelValues("available").Set(float64(stats.Available))
	s.slots.WithLabelValues("occupied").Set(float64(stats.Occupied))
}

func (s *PromSink) RecordPersistFailure(op string) {
	s.persistFailures.WithLabelValues(op).Inc()
}
