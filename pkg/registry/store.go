package registry

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is the in-memory catalog of devices and automations. Devices keep
// their insertion order, which is the default display order in the panel.
// State lives only for the lifetime of the process; a restart goes back to
// seed data.
//
// All methods are safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	devices     []Device
	index       map[string]int // device ID -> position in devices
	automations []Automation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// NewSeededStore creates a store pre-populated with the demo household:
// six devices across five rooms and three automations.
func NewSeededStore() *Store {
	s := NewStore()
	s.Merge(seedDevices())
	s.automations = seedAutomations()
	return s
}

// Devices returns all devices in insertion order. The slice is a copy;
// callers can modify it freely.
func (s *Store) Devices() []Device {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Automations returns all automations. The slice is a copy.
func (s *Store) Automations() []Automation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Automation, len(s.automations))
	copy(out, s.automations)
	return out
}

// Get returns the device with the given ID, or ErrNotFound.
func (s *Store) Get(id string) (Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return Device{}, ErrNotFound
	}
	return s.devices[pos], nil
}

// Len returns the number of devices in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

// ToggleStatus flips a device between on and off. Devices whose status is
// online/offline are reachability-reporting and are left untouched, as is an
// unknown ID. Both cases are deliberate no-ops, not errors: the panel never
// shows a failure for a toggle.
func (s *Store) ToggleStatus(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		log.Debug().Str("device_id", id).Msg("toggle ignored, unknown device")
		return
	}

	switch s.devices[pos].Status {
	case StatusOn:
		s.devices[pos].Status = StatusOff
	case StatusOff:
		s.devices[pos].Status = StatusOn
	}
}

// Merge appends every device in batch whose ID is not already present,
// preserving batch order. Colliding IDs are dropped; the existing entry is
// never overwritten. Merging the same batch twice leaves the store exactly
// as after the first merge. Devices arriving without a room are filed under
// RoomUnassigned.
func (s *Store) Merge(batch []Device) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, d := range batch {
		if _, exists := s.index[d.ID]; exists {
			continue
		}
		if d.Room == "" {
			d.Room = RoomUnassigned
		}
		s.index[d.ID] = len(s.devices)
		s.devices = append(s.devices, d)
		added++
	}

	if added > 0 {
		log.Info().Int("added", added).Int("total", len(s.devices)).Msg("devices merged")
	}
	return added
}

// AssignRoom moves a device to the given room. An empty room puts the device
// back under RoomUnassigned. Unknown IDs are a silent no-op.
func (s *Store) AssignRoom(id, room string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		log.Debug().Str("device_id", id).Msg("room assignment ignored, unknown device")
		return
	}
	if room == "" {
		room = RoomUnassigned
	}
	s.devices[pos].Room = room
}
