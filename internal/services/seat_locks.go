package services

import "sync"

// SeatLocks serializes seat-ledger mutations per bus. Admission (claiming
// seats) and release (dropping them) both take the same lock, so the
// read-occupancy/decide/write sequence can never interleave with another
// mutation on the same bus. Buses never contend with each other.
type SeatLocks struct {
	mu    sync.Mutex
	buses map[int64]*sync.Mutex
}

// NewSeatLocks creates an empty lock table.
func NewSeatLocks() *SeatLocks {
	return &SeatLocks{buses: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutation lock for a bus, creating it on first use.
func (l *SeatLocks) Lock(busID int64) {
	l.forBus(busID).Lock()
}

// Unlock releases the mutation lock for a bus.
func (l *SeatLocks) Unlock(busID int64) {
	l.forBus(busID).Unlock()
}

func (l *SeatLocks) forBus(busID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.buses[busID]
	if !ok {
		m = &sync.Mutex{}
		l.buses[busID] = m
	}
	return m
}
