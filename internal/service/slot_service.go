package service

import (
	"context"
	"errors"
	"sync"

	"parkingslots/internal/db"
	"parkingslots/internal/entities"
	apperrors "parkingslots/internal/errors"
	"parkingslots/internal/logger"
	"parkingslots/internal/metrics"
	"parkingslots/internal/repository"
	"parkingslots/internal/store"
)

const (
	opRegister   = "register"
	opAllocate   = "allocate"
	opAllocateAt = "allocate_at"
	opRelease    = "release"
)

// Notifier delivers allocation receipts. Implementations must not block.
type Notifier interface {
	NotifyAllocation(slot db.Slot, req entities.AllocationRequest)
}

// SlotService is the entry point front ends call. Operations are serialised:
// each one validates, mutates the store, saves the full list and returns.
type SlotService struct {
	mu          sync.Mutex
	repo        repository.SlotRepository
	store       *store.SlotStore
	engine      *AllocationEngine
	notifier    Notifier
	metrics     metrics.Recorder
	log         logger.Logger
	initialized bool
}

// NewSlotService wires the service. notifier, rec and log may be nil.
func NewSlotService(repo repository.SlotRepository, notifier Notifier, rec metrics.Recorder, log logger.Logger) *SlotService {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	s := store.NewSlotStore()
	return &SlotService{
		repo:     repo,
		store:    s,
		engine:   NewAllocationEngine(s),
		notifier: notifier,
		metrics:  rec,
		log:      log,
	}
}

// Init loads the persisted slots once. Unreadable or malformed data is logged
// and the service starts with an empty store. Operations called before Init
// load on first use, so a mutation never saves over data it has not read.
func (s *SlotService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
}

// ensureLoaded must be called with s.mu held.
func (s *SlotService) ensureLoaded(ctx context.Context) {
	if s.initialized {
		return
	}
	s.initialized = true

	slots, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, apperrors.ErrMalformedData):
		s.log.Warnf("Stored slot list is malformed, starting empty: %v", err)
		slots = nil
	case err != nil:
		s.log.Errorf("Could not load stored slots, starting empty: %v", err)
		slots = nil
	}
	s.store = store.Restore(slots)
	s.engine = NewAllocationEngine(s.store)
	s.log.Infof("Loaded %d parking slots", s.store.Len())
	s.metrics.RecordStats(ComputeStats(s.store.All()))
}

func (s *SlotService) RegisterSlot(ctx context.Context, id string, covered, evCharging bool) (db.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	slot, err := s.store.Register(id, covered, evCharging)
	if err != nil {
		s.rejected(opRegister, err)
		return db.Slot{}, err
	}
	s.log.Infof("Registered slot %s (covered=%t, ev=%t)", slot.ID, slot.Covered, slot.EVCharging)
	s.committed(ctx, opRegister)
	return slot, nil
}

// Allocate picks the first free slot matching req and occupies it.
func (s *SlotService) Allocate(ctx context.Context, req entities.AllocationRequest) (entities.AllocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	res, err := s.engine.Allocate(req)
	if err != nil {
		s.rejected(opAllocate, err)
		return res, err
	}
	s.log.Infof("Allocated slot %s (needsEV=%t, needsCover=%t)", res.Slot.ID, req.NeedsEV, req.NeedsCover)
	s.committed(ctx, opAllocate)

	if s.notifier != nil && (req.NotifyEmail != "" || req.NotifyPhone != "") {
		s.notifier.NotifyAllocation(*res.Slot, req)
	}
	return res, nil
}

// AllocateAt occupies the slot at index regardless of its attributes.
func (s *SlotService) AllocateAt(ctx context.Context, index int) (entities.AllocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	res, err := s.engine.AllocateAt(index)
	if err != nil {
		s.rejected(opAllocateAt, err)
		return res, err
	}
	s.log.Infof("Occupied slot %s at index %d", res.Slot.ID, index)
	s.committed(ctx, opAllocateAt)
	return res, nil
}

func (s *SlotService) Release(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if err := s.engine.Release(index); err != nil {
		s.rejected(opRelease, err)
		return err
	}
	slot, _ := s.store.Get(index)
	s.log.Infof("Released slot %s", slot.ID)
	s.committed(ctx, opRelease)
	return nil
}

func (s *SlotService) GetStats() entities.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(context.Background())
	return ComputeStats(s.store.All())
}

func (s *SlotService) ListSlots() []entities.SlotView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(context.Background())

	slots := s.store.All()
	views := make([]entities.SlotView, len(slots))
	for i, slot := range slots {
		views[i] = entities.SlotView{Index: i, Slot: slot}
	}
	return views
}

func (s *SlotService) rejected(op string, err error) {
	s.log.Warnf("Rejected %s: %v", op, err)
	s.metrics.RecordOperation(op, metrics.OutcomeRejected)
}

// committed persists the store after a successful mutation. The save outlives a
// cancelled request context. A failed save is logged; the in-memory state stays
// authoritative.
func (s *SlotService) committed(ctx context.Context, op string) {
	slots := s.store.All()
	s.metrics.RecordOperation(op, metrics.OutcomeSuccess)
	s.metrics.RecordStats(ComputeStats(slots))
	if err := s.repo.Save(context.WithoutCancel(ctx), slots); err != nil {
		s.log.Errorf("Failed to persist slots after %s: %v", op, err)
		s.metrics.RecordPersistFailure(op)
	}
}
