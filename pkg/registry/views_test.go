package registry

import (
	"reflect"
	"testing"
)

func viewFixture() []Device {
	return []Device{
		{ID: "1", Name: "Living Room Lights", Type: TypeLight, Room: "Living Room", Status: StatusOn},
		{ID: "2", Name: "Kitchen Plug", Type: TypePlug, Room: "Kitchen", Status: StatusOff, IPAddress: "192.168.1.105", SerialNumber: "PLG-8821-V2"},
		{ID: "3", Name: "Hallway Cam", Type: TypeCamera, Room: "Kitchen", Status: StatusOn, IPAddress: "192.168.1.110"},
		{ID: "4", Name: "Stray Sensor", Type: TypeSensor, Status: StatusOff},
		{ID: "5", Name: "Garage Hub", Type: TypeHub, Room: "Garage", Status: StatusOnline},
	}
}

func ids(devices []Device) []string {
	out := make([]string, len(devices))
	for i, d := range devices {
		out[i] = d.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	devices := viewFixture()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term matches all", "", []string{"1", "2", "3", "4", "5"}},
		{"name substring", "plug", []string{"2"}},
		{"name case insensitive", "LIVING", []string{"1"}},
		{"ip literal", "192.168.1.105", []string{"2"}},
		{"ip prefix", "192.168.1.1", []string{"2", "3"}},
		{"serial", "plg-8821", []string{"2"}},
		{"id", "5", []string{"2", "5"}},
		{"no match", "doorbell", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(devices, tt.term))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestFilterByType(t *testing.T) {
	devices := viewFixture()

	if got := ids(FilterByType(devices, "plug")); !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf("FilterByType(plug) = %v", got)
	}
	if got := FilterByType(devices, FilterAll); len(got) != len(devices) {
		t.Errorf("FilterByType(All) dropped devices: %d of %d", len(got), len(devices))
	}
	if got := FilterByType(devices, "vacuum"); len(got) != 0 {
		t.Errorf("FilterByType(vacuum) = %v, want empty", ids(got))
	}
}

func TestGroupByRoom(t *testing.T) {
	groups := GroupByRoom(viewFixture())

	if len(groups) != 4 {
		t.Fatalf("group count = %d, want 4", len(groups))
	}

	// Per-room insertion order is preserved.
	kitchen := ids(groups["Kitchen"])
	if !reflect.DeepEqual(kitchen, []string{"2", "3"}) {
		t.Errorf("Kitchen = %v, want [2 3]", kitchen)
	}

	// Roomless devices land under Unassigned.
	if got := ids(groups[RoomUnassigned]); !reflect.DeepEqual(got, []string{"4"}) {
		t.Errorf("Unassigned = %v, want [4]", got)
	}
}

func TestRooms_LexicographicOrder(t *testing.T) {
	devices := []Device{
		{ID: "1", Room: "Kitchen"},
		{ID: "2", Room: "Living Room"},
		{ID: "3"}, // no room
	}

	rooms := Rooms(GroupByRoom(devices))
	want := []string{"Kitchen", "Living Room", RoomUnassigned}
	if !reflect.DeepEqual(rooms, want) {
		t.Errorf("Rooms = %v, want %v", rooms, want)
	}
}

func TestActiveCount(t *testing.T) {
	// Only status "on" counts; "online" is reachability, not activity.
	if got := ActiveCount(viewFixture()); got != 2 {
		t.Errorf("ActiveCount = %d, want 2", got)
	}
	if got := ActiveCount(nil); got != 0 {
		t.Errorf("ActiveCount(nil) = %d, want 0", got)
	}
}
