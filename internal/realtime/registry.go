package realtime

import "sync"

// Conn is one live duplex connection as seen by the registry and notifier.
type Conn interface {
	ID() string
	// IsOpen reports whether the connection still accepts frames.
	IsOpen() bool
	// Send queues a frame without blocking; false means it was not queued.
	Send(frame []byte) bool
	Close()
}

// Registry maps each user to the set of their live connections. Users with
// no connections have no entry.
type Registry struct {
	mu    sync.RWMutex
	conns map[uint64]map[Conn]struct{}
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[uint64]map[Conn]struct{})}
}

// Register adds conn to the user's set and reports whether it is the user's
// first live connection.
func (r *Registry) Register(userID uint64, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}
	return !ok
}

// Deregister removes conn and reports whether the user has no connections
// left. Removing an unknown connection is a no-op that returns false.
func (r *Registry) Deregister(userID uint64, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return false
	}
	if _, ok := set[conn]; !ok {
		return false
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
		return true
	}
	return false
}

// ListLive returns a snapshot of the user's connections.
func (r *Registry) ListLive(userID uint64) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.conns[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

func (r *Registry) Online(userID uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[userID]) > 0
}

// Users returns the number of users with at least one live connection.
func (r *Registry) Users() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// CloseAll closes every registered connection; used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	var all []Conn
	for _, set := range r.conns {
		for c := range set {
			all = append(all, c)
		}
	}
	r.mu.RUnlock()

	for _, c := range all {
		c.Close()
	}
}
