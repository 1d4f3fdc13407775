package registry

import (
	"errors"
	"testing"
)

func batch() []Device {
	return []Device{
		{ID: "a", Name: "Desk Lamp", Type: TypeLight, Room: "Office", Status: StatusOn},
		{ID: "b", Name: "Heater Plug", Type: TypePlug, Status: StatusOff},
		{ID: "c", Name: "Hue Bridge", Type: TypeHub, Room: "Living Room", Status: StatusOnline},
	}
}

func TestMerge_PreservesBatchOrder(t *testing.T) {
	s := NewStore()
	added := s.Merge(batch())
	if added != 3 {
		t.Fatalf("added = %d, want 3", added)
	}

	devices := s.Devices()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if devices[i].ID != id {
			t.Errorf("devices[%d].ID = %q, want %q", i, devices[i].ID, id)
		}
	}
}

func TestMerge_Idempotent(t *testing.T) {
	s := NewStore()
	s.Merge(batch())
	once := s.Devices()

	added := s.Merge(batch())
	if added != 0 {
		t.Errorf("second merge added %d devices, want 0", added)
	}

	twice := s.Devices()
	if len(twice) != len(once) {
		t.Fatalf("len after second merge = %d, want %d", len(twice), len(once))
	}
	for i := range once {
		if twice[i] != once[i] {
			t.Errorf("device %d changed after second merge: %+v != %+v", i, twice[i], once[i])
		}
	}
}

func TestMerge_CollisionKeepsExisting(t *testing.T) {
	s := NewStore()
	s.Merge([]Device{{ID: "a", Name: "Original", Type: TypeLight, Room: "Office", Status: StatusOn}})

	s.Merge([]Device{
		{ID: "a", Name: "Impostor", Type: TypePlug, Room: "Garage", Status: StatusOff},
		{ID: "z", Name: "Newcomer", Type: TypeSensor, Room: "Garage", Status: StatusOn},
	})

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	if got.Name != "Original" || got.Room != "Office" || got.Status != StatusOn {
		t.Errorf("existing device was overwritten: %+v", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestMerge_NoDuplicateIDs(t *testing.T) {
	s := NewStore()
	s.Merge(batch())
	s.Merge(batch())

	seen := make(map[string]bool)
	for _, d := range s.Devices() {
		if seen[d.ID] {
			t.Fatalf("duplicate device ID %q in store", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestMerge_DefaultsRoomToUnassigned(t *testing.T) {
	s := NewStore()
	s.Merge(batch())

	got, err := s.Get("b")
	if err != nil {
		t.Fatalf("Get(b): %v", err)
	}
	if got.Room != RoomUnassigned {
		t.Errorf("Room = %q, want %q", got.Room, RoomUnassigned)
	}
}

func TestToggleStatus_FlipsOnOff(t *testing.T) {
	s := NewStore()
	s.Merge(batch())

	s.ToggleStatus("a")
	if d, _ := s.Get("a"); d.Status != StatusOff {
		t.Errorf("after toggle, status = %q, want %q", d.Status, StatusOff)
	}

	s.ToggleStatus("a")
	if d, _ := s.Get("a"); d.Status != StatusOn {
		t.Errorf("after second toggle, status = %q, want %q", d.Status, StatusOn)
	}
}

func TestToggleStatus_OnlineDeviceUntouched(t *testing.T) {
	s := NewStore()
	s.Merge(batch())

	s.ToggleStatus("c")
	if d, _ := s.Get("c"); d.Status != StatusOnline {
		t.Errorf("online device was toggled to %q", d.Status)
	}
}

func TestToggleStatus_UnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	s.Merge(batch())

	before := s.Devices()
	s.ToggleStatus("nope")
	after := s.Devices()

	for i := range before {
		if after[i] != before[i] {
			t.Errorf("toggle of unknown ID mutated device %d", i)
		}
	}
}

func TestAssignRoom(t *testing.T) {
	s := NewStore()
	s.Merge(batch())

	s.AssignRoom("b", "Kitchen")
	if d, _ := s.Get("b"); d.Room != "Kitchen" {
		t.Errorf("Room = %q, want Kitchen", d.Room)
	}

	s.AssignRoom("b", "")
	if d, _ := s.Get("b"); d.Room != RoomUnassigned {
		t.Errorf("empty assignment gave Room = %q, want %q", d.Room, RoomUnassigned)
	}

	// Unknown ID must not panic or mutate anything.
	s.AssignRoom("nope", "Kitchen")
}

func TestGet_UnknownID(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestNewSeededStore(t *testing.T) {
	s := NewSeededStore()

	if s.Len() != 6 {
		t.Errorf("seeded device count = %d, want 6", s.Len())
	}
	if n := len(s.Automations()); n != 3 {
		t.Errorf("seeded automation count = %d, want 3", n)
	}
	for _, a := range s.Automations() {
		if len(a.Actions) == 0 {
			t.Errorf("automation %q has no actions", a.Name)
		}
	}
}

func TestDevices_ReturnsCopy(t *testing.T) {
	s := NewSeededStore()

	snapshot := s.Devices()
	snapshot[0].Name = "clobbered"

	if d, _ := s.Get(snapshot[0].ID); d.Name == "clobbered" {
		t.Error("mutating the returned slice changed the store")
	}
}
