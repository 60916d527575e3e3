package server

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/aigua/internal/session"
)

// Registry holds the live sessions. Each session has its own lock;
// gateway commands run with the lock released so readers observe the
// loading state.
type Registry struct {
	newSession func(id string) *session.Orchestrator

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

type liveSession struct {
	mu   sync.Mutex
	orch *session.Orchestrator
}

func NewRegistry(newSession func(id string) *session.Orchestrator) *Registry {
	return &Registry{
		newSession: newSession,
		sessions:   make(map[string]*liveSession),
	}
}

// Create starts a new session and returns its id.
func (r *Registry) Create() (string, session.Snapshot) {
	id := uuid.NewString()
	ls := &liveSession{orch: r.newSession(id)}

	r.mu.Lock()
	r.sessions[id] = ls
	r.mu.Unlock()

	return id, ls.state()
}

func (r *Registry) get(id string) (*liveSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ls, ok := r.sessions[id]
	return ls, ok
}

// Delete discards a session. It reports whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (ls *liveSession) state() session.Snapshot {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.orch.State()
}

func (ls *liveSession) dispatch(ctx context.Context, ev session.Event) session.Command {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.orch.Dispatch(ctx, ev)
}

// apply dispatches ev and runs any gateway command outside the lock. A
// gateway call always runs to completion, even if the client goes away.
func (ls *liveSession) apply(ctx context.Context, ev session.Event) session.Snapshot {
	ctx = context.WithoutCancel(ctx)
	cmd := ls.dispatch(ctx, ev)
	for cmd != nil {
		cmd = ls.dispatch(ctx, cmd(ctx))
	}
	return ls.state()
}
