package registry

// DeviceType classifies a device. The set is closed; the UI renders an icon
// per type and falls back to a generic one for anything it does not know.
type DeviceType string

const (
	TypeLight      DeviceType = "light"
	TypePlug       DeviceType = "plug"
	TypeThermostat DeviceType = "thermostat"
	TypeCamera     DeviceType = "camera"
	TypeLock       DeviceType = "lock"
	TypeSensor     DeviceType = "sensor"
	TypeSpeaker    DeviceType = "speaker"
	TypeVacuum     DeviceType = "vacuum"
	TypeHub        DeviceType = "hub"
)

// FilterAll is the sentinel type filter that matches every device.
const FilterAll = "All"

// Status is a device's power or reachability state. Switchable devices use
// on/off; infrastructure devices (hubs, gateways) report online/offline.
type Status string

const (
	StatusOn      Status = "on"
	StatusOff     Status = "off"
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// ConnectionType is the transport a device is reached over.
type ConnectionType string

const (
	ConnWiFi      ConnectionType = "wifi"
	ConnZigbee    ConnectionType = "zigbee"
	ConnBluetooth ConnectionType = "bluetooth"
	ConnEthernet  ConnectionType = "ethernet"
)

// RoomUnassigned is the room label for devices that have not been placed yet.
const RoomUnassigned = "Unassigned"

// Device is a single controllable or sensing unit tracked by the registry.
// Value is a display-only reading (brightness %, temperature, lock state);
// the registry never interprets it.
type Device struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           DeviceType     `json:"type"`
	Room           string         `json:"room"`
	Status         Status         `json:"status"`
	Value          string         `json:"value,omitempty"`
	Battery        int            `json:"battery,omitempty"`
	ConnectionType ConnectionType `json:"connection_type,omitempty"`
	Integration    string         `json:"integration,omitempty"`

	// Technical metadata, opaque strings shown on the device detail row.
	SerialNumber string `json:"serial_number,omitempty"`
	IPAddress    string `json:"ip_address,omitempty"`
	ModelNumber  string `json:"model_number,omitempty"`
}

// Active reports whether the device counts toward the dashboard's active
// bucket. Only switchable devices that are currently on qualify; online
// infrastructure devices do not.
func (d Device) Active() bool {
	return d.Status == StatusOn
}

// Automation is a named rule binding a trigger to an ordered action list.
// Automations are seed-only: the panel lists and displays them but has no
// create/edit path wired to the store.
type Automation struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Active  bool     `json:"active"`
	Trigger string   `json:"trigger"`
	Time    string   `json:"time,omitempty"`
	Days    []string `json:"days,omitempty"`
	Actions []string `json:"actions"`
}

// ValidType reports whether t is one of the known device types.
func ValidType(t DeviceType) bool {
	switch t {
	case TypeLight, TypePlug, TypeThermostat, TypeCamera, TypeLock,
		TypeSensor, TypeSpeaker, TypeVacuum, TypeHub:
		return true
	}
	return false
}
