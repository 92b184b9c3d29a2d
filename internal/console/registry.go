package console

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type entry struct {
	screen   *Screen
	lastSeen time.Time
}

// Registry guarda uma tela por sessão do console e descarta as ociosas.
type Registry struct {
	mu      sync.Mutex
	screens map[string]*entry
	ttl     time.Duration
	now     func() time.Time
	log     *zap.Logger
}

func NewRegistry(ttl time.Duration, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		screens: map[string]*entry{},
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

func (r *Registry) Create() *Screen {
	s := NewScreen(uuid.NewString())

	r.mu.Lock()
	r.screens[s.ID] = &entry{screen: s, lastSeen: r.now()}
	r.mu.Unlock()

	r.log.Debug("console session created", zap.String("session_id", s.ID))
	return s
}

// Get devolve a tela e renova o prazo de ociosidade.
func (r *Registry) Get(id string) (*Screen, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.screens[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.screen, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}

// Sweep fecha as telas sem acesso há mais de ttl. ttl <= 0 desliga a expiração.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.ttl)
	var expired []*Screen

	r.mu.Lock()
	for id, e := range r.screens {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.screen)
			delete(r.screens, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		r.log.Debug("console session expired", zap.String("session_id", s.ID))
	}
	return len(expired)
}

// Run varre periodicamente até ctx terminar, e então fecha todas as telas.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Info("expired console sessions", zap.Int("count", n))
			}
		case <-ctx.Done():
			r.CloseAll()
			return
		}
	}
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	screens := r.screens
	r.screens = map[string]*entry{}
	r.mu.Unlock()

	for _, e := range screens {
		e.screen.Close()
	}
}
