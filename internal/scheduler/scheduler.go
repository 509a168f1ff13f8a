// Package scheduler polls every configured redundant source on an interval
// and keeps the per-source resume cursor between cycles.
package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/clock"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

const defaultInterval = 60 * time.Second

var (
	// ErrUnknownSource is returned when triggering a source that was never added.
	ErrUnknownSource = errors.New("unknown source")
	// ErrDuplicateSource is returned when a source address is added twice.
	ErrDuplicateSource = errors.New("source already added")
)

// Config tunes the polling loop.
type Config struct {
	Interval time.Duration
	// BlockSignal, when set, triggers an early poll of every source.
	BlockSignal <-chan struct{}
}

// SourceStatus is a point-in-time view of one source.
type SourceStatus struct {
	Address   string            `json:"address"`
	Cursor    string            `json:"cursor,omitempty"`
	Status    model.CycleStatus `json:"status,omitempty"`
	LastError string            `json:"last_error,omitempty"`
	LastRun   time.Time         `json:"last_run,omitzero"`
	InFlight  bool              `json:"in_flight"`
}

type state struct {
	refresher Refresher
	// running is shared by every state ever added under the same address.
	running *sync.Mutex

	mu       sync.Mutex
	cursor   *model.ResumeCursor
	status   model.CycleStatus
	lastErr  error
	lastRun  time.Time
	inFlight bool
}

func (s *state) snapshot() SourceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SourceStatus{
		Address:  s.refresher.Source().Address,
		Status:   s.status,
		LastRun:  s.lastRun,
		InFlight: s.inFlight,
	}
	if s.cursor != nil {
		st.Cursor = s.cursor.String()
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// Scheduler owns the set of sources and their cursors.
type Scheduler struct {
	mu      sync.RWMutex
	sources map[string]*state
	// running outlives Remove so a re-added source cannot overlap a cycle
	// still in flight for its previous registration.
	running map[string]*sync.Mutex

	interval time.Duration
	signal   <-chan struct{}
	metrics  Metrics
	logger   *zap.Logger
	now      func() time.Time
	wait     func(context.Context, time.Duration, <-chan struct{}) error
}

// New builds an empty Scheduler.
func New(cfg Config, metrics Metrics, logger *zap.Logger) (*Scheduler, error) {
	if metrics == nil {
		return nil, errors.New("scheduler metrics is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Scheduler{
		sources:  make(map[string]*state),
		running:  make(map[string]*sync.Mutex),
		interval: cfg.Interval,
		signal:   cfg.BlockSignal,
		metrics:  metrics,
		logger:   logger.Named("scheduler"),
		now:      time.Now,
		wait:     clock.WaitOrSignal,
	}, nil
}

// Add registers a source. Its first cycle starts from the node's best block.
func (s *Scheduler) Add(r Refresher) error {
	addr := r.Source().Address

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sources[addr]; ok {
		return ErrDuplicateSource
	}
	lock, ok := s.running[addr]
	if !ok {
		lock = &sync.Mutex{}
		s.running[addr] = lock
	}
	s.sources[addr] = &state{refresher: r, running: lock}
	s.logger.Info("source added", zap.String("source", addr))
	return nil
}

// Remove forgets a source and its cursor. A cycle already in flight finishes
// but its result is discarded, and the address stays busy until it does.
func (s *Scheduler) Remove(address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sources[address]; !ok {
		return false
	}
	delete(s.sources, address)
	s.logger.Info("source removed", zap.String("source", address))
	return true
}

// Sources lists the configured sources ordered by address.
func (s *Scheduler) Sources() []model.RemoteSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RemoteSource, 0, len(s.sources))
	for _, st := range s.sources {
		out = append(out, st.refresher.Source())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Snapshot reports the state of every source ordered by address.
func (s *Scheduler) Snapshot() []SourceStatus {
	s.mu.RLock()
	states := make([]*state, 0, len(s.sources))
	for _, st := range s.sources {
		states = append(states, st)
	}
	s.mu.RUnlock()

	out := make([]SourceStatus, 0, len(states))
	for _, st := range states {
		out = append(out, st.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Trigger runs one cycle for the source unless one is already in flight, in
// which case it returns false without waiting.
func (s *Scheduler) Trigger(ctx context.Context, address string) (bool, error) {
	s.mu.RLock()
	st, ok := s.sources[address]
	s.mu.RUnlock()
	if !ok {
		return false, ErrUnknownSource
	}

	if !st.running.TryLock() {
		s.metrics.ObserveSkippedTrigger(address)
		s.logger.Debug("cycle in flight, skipping trigger", zap.String("source", address))
		return false, nil
	}
	defer st.running.Unlock()

	st.mu.Lock()
	prior := st.cursor
	st.inFlight = true
	st.mu.Unlock()

	result, err := st.refresher.Cycle(ctx, prior)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.inFlight = false
	st.lastRun = s.now()
	st.status = result.Status
	st.lastErr = err
	if err == nil && result.Next != nil {
		next := *result.Next
		st.cursor = &next
	}
	return true, err
}

// Run polls every source immediately and then on every interval or block
// signal, until ctx is canceled. A source whose previous cycle is still
// running skips the tick. Run returns after the in-flight cycles finish.
func (s *Scheduler) Run(ctx context.Context) error {
	var g errgroup.Group
	for {
		s.tick(ctx, &g)
		if err := s.wait(ctx, s.interval, s.signal); err != nil {
			_ = g.Wait()
			return err
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, g *errgroup.Group) {
	for _, src := range s.Sources() {
		addr := src.Address
		g.Go(func() error {
			_, err := s.Trigger(ctx, addr)
			switch {
			case err == nil, errors.Is(err, ErrUnknownSource):
			case ctx.Err() != nil:
				s.logger.Debug("sync cycle interrupted", zap.String("source", addr), zap.Error(err))
			default:
				s.logger.Warn("sync cycle failed", zap.String("source", addr), zap.Error(err))
			}
			return nil
		})
	}
}
