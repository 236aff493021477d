package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type registryEntry struct {
	coordinator *Coordinator
	init        sync.Once
	lastUsed    time.Time
}

// Registry hands out one Coordinator per visitor session, loading it from the
// session store on first use.
type Registry struct {
	store  entryStore
	remote remoteCheckout
	opts   []Option
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

func NewRegistry(store entryStore, remote remoteCheckout, logger *zap.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:   store,
		remote:  remote,
		opts:    append([]Option{WithLogger(logger)}, opts...),
		logger:  logger,
		now:     time.Now,
		entries: make(map[string]*registryEntry),
	}
}

// Get returns the initialized coordinator for sessionID.
func (r *Registry) Get(ctx context.Context, sessionID string) *Coordinator {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &registryEntry{coordinator: NewCoordinator(sessionID, r.store, r.remote, r.opts...)}
		r.entries[sessionID] = e
	}
	e.lastUsed = r.now()
	r.mu.Unlock()

	// The loaded cart outlives the request that first touched it.
	e.init.Do(func() { e.coordinator.Initialize(context.WithoutCancel(ctx)) })
	return e.coordinator
}

// Sweep drops coordinators unused for longer than idle and returns how many
// were dropped. Coordinators with remote calls in flight are kept; dropped
// ones reload from the session store on their next Get.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, e := range r.entries {
		if e.lastUsed.After(cutoff) || e.coordinator.busy() {
			continue
		}
		delete(r.entries, id)
		dropped++
	}
	if dropped > 0 {
		r.logger.Debug("swept idle cart sessions", zap.Int("dropped", dropped), zap.Int("remaining", len(r.entries)))
	}
	return dropped
}

// Len reports how many coordinators are resident.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(idle)
		}
	}
}
