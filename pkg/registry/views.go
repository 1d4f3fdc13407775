package registry

import (
	"sort"
	"strings"
)

// Read-only projections over device slices. These never touch the store;
// handlers take a snapshot via Store.Devices and project it here.

// Search returns the devices whose name, IP address, serial number or ID
// contains term, case-insensitively. An empty term matches everything.
func Search(devices []Device, term string) []Device {
	if term == "" {
		return devices
	}
	needle := strings.ToLower(term)

	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.IPAddress), needle) ||
			strings.Contains(strings.ToLower(d.SerialNumber), needle) ||
			strings.Contains(strings.ToLower(d.ID), needle) {
			out = append(out, d)
		}
	}
	return out
}

// FilterByType returns the devices of the given type. The sentinel FilterAll
// passes everything through.
func FilterByType(devices []Device, typ string) []Device {
	if typ == FilterAll || typ == "" {
		return devices
	}

	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if string(d.Type) == typ {
			out = append(out, d)
		}
	}
	return out
}

// GroupByRoom buckets devices by room, keeping per-room insertion order.
// Devices without a room land under RoomUnassigned.
func GroupByRoom(devices []Device) map[string][]Device {
	groups := make(map[string][]Device)
	for _, d := range devices {
		room := d.Room
		if room == "" {
			room = RoomUnassigned
		}
		groups[room] = append(groups[room], d)
	}
	return groups
}

// Rooms returns the group keys in lexicographic order, which is the order
// the panel enumerates room sections in.
func Rooms(groups map[string][]Device) []string {
	rooms := make([]string, 0, len(groups))
	for room := range groups {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// ActiveCount returns the number of devices that are currently on.
func ActiveCount(devices []Device) int {
	n := 0
	for _, d := range devices {
		if d.Active() {
			n++
		}
	}
	return n
}
