package types

import (
	"time"

	"homenet/pkg/registry"
)

// --- Request DTOs ---

// AssignRoomRequest is the request body for PATCH /devices/:id/room.
// An empty room moves the device back to Unassigned.
type AssignRoomRequest struct {
	Room string `json:"room"`
}

// SuggestionsRequest is the request body for POST /assistant/suggestions
type SuggestionsRequest struct {
	DeviceNames []string `json:"device_names"`
}

// ChatRequest is the request body for POST /assistant/chat
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	DeviceCount int       `json:"device_count"`
	Assistant   string    `json:"assistant"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices     []registry.Device `json:"devices"`
	Count       int               `json:"count"`
	ActiveCount int               `json:"active_count"`
}

// RoomGroup is one room section of a grouped device listing
type RoomGroup struct {
	Room    string            `json:"room"`
	Devices []registry.Device `json:"devices"`
}

// GroupedDevicesResponse is returned from GET /devices?group_by=room.
// Rooms appear in lexicographic order.
type GroupedDevicesResponse struct {
	Rooms       []RoomGroup `json:"rooms"`
	Count       int         `json:"count"`
	ActiveCount int         `json:"active_count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device registry.Device `json:"device"`
}

// ImportDevicesResponse is returned from POST /devices/import
type ImportDevicesResponse struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// ListAutomationsResponse is returned from GET /automations
type ListAutomationsResponse struct {
	Automations []registry.Automation `json:"automations"`
	Count       int                   `json:"count"`
}

// ScanResponse is returned from the discovery endpoints
type ScanResponse struct {
	Devices []registry.Device `json:"devices"`
	Count   int               `json:"count"`
}

// SuggestionsResponse is returned from POST /assistant/suggestions
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ChatResponse is returned from POST /assistant/chat
type ChatResponse struct {
	Reply string `json:"reply"`
}
