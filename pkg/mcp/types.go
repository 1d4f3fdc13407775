package mcp

import "homenet/pkg/registry"

// --- List Devices Tool ---

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices     []registry.Device `json:"devices" jsonschema:"description=Matching devices in inventory order"`
	Count       int               `json:"count" jsonschema:"description=Number of matching devices"`
	ActiveCount int               `json:"active_count" jsonschema:"description=How many of them are currently on"`
}

// --- Get Device Tool ---

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device registry.Device `json:"device" jsonschema:"description=Device information"`
}

// --- Toggle / Assign Room Tools ---

// MutationOutput is the output for the toggle_device and assign_room tools.
// Both mutations are silent no-ops for unknown IDs, so Applied reports
// whether the device existed rather than whether anything "failed".
type MutationOutput struct {
	Applied bool             `json:"applied" jsonschema:"description=Whether the device exists and the mutation was applied"`
	Device  *registry.Device `json:"device,omitempty" jsonschema:"description=The device after the mutation"`
}

// --- List Automations Tool ---

// ListAutomationsOutput is the output for the list_automations tool
type ListAutomationsOutput struct {
	Automations []registry.Automation `json:"automations" jsonschema:"description=Configured automations"`
	Count       int                   `json:"count" jsonschema:"description=Number of automations"`
}

// --- Discovery Tools ---

// DiscoveryOutput is the output for the scan_network and start_pairing tools
type DiscoveryOutput struct {
	Found  []registry.Device `json:"found" jsonschema:"description=Devices discovered in this run"`
	Merged int               `json:"merged" jsonschema:"description=How many of them were new and entered the inventory"`
	Total  int               `json:"total" jsonschema:"description=Inventory size after the merge"`
}

// --- Assistant Tools ---

// SuggestAutomationsOutput is the output for the suggest_automations tool
type SuggestAutomationsOutput struct {
	Suggestions []string `json:"suggestions" jsonschema:"description=Three automation ideas in 'Title: Description' form"`
}

// ChatOutput is the output for the chat tool
type ChatOutput struct {
	Reply string `json:"reply" jsonschema:"description=The assistant's reply"`
}
