package services

import "sync"

// sessionLocks serializes roster and status mutations per class session. Locks
// are scoped to a single session so unrelated bookings never contend with each
// other.
var sessionLocks sync.Map // session ID -> *sync.Mutex

// lockSession acquires the mutex for the given session and returns it locked.
// The caller must Unlock it.
func lockSession(sessionID uint) *sync.Mutex {
	m, _ := sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu
}
