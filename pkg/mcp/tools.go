package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List the device inventory, optionally searched or filtered by type"),
			mcp.WithString("query",
				mcp.Description("Search term matched against name, IP address, serial number and ID"),
			),
			mcp.WithString("type",
				mcp.Description("Device type filter (light/plug/thermostat/camera/lock/sensor/speaker/vacuum/hub), or 'All'"),
			),
		),
		s.handleListDevices,
	)

	// Get device
	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get detailed information about a specific device by ID"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
		),
		s.handleGetDevice,
	)

	// Toggle device
	s.mcpServer.AddTool(
		mcp.NewTool("toggle_device",
			mcp.WithDescription("Flip a device between on and off. Online/offline devices and unknown IDs are silently ignored."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
		),
		s.handleToggleDevice,
	)

	// Assign room
	s.mcpServer.AddTool(
		mcp.NewTool("assign_room",
			mcp.WithDescription("Move a device to a room. An empty room moves it back to Unassigned."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
			mcp.WithString("room",
				mcp.Description("Target room name"),
			),
		),
		s.handleAssignRoom,
	)

	// List automations
	s.mcpServer.AddTool(
		mcp.NewTool("list_automations",
			mcp.WithDescription("List the configured automations with their triggers and actions"),
		),
		s.handleListAutomations,
	)

	// Network scan
	s.mcpServer.AddTool(
		mcp.NewTool("scan_network",
			mcp.WithDescription("Scan the home network for new devices and merge the findings into the inventory"),
			mcp.WithString("router_ip",
				mcp.Description("Router IP address the subnet is derived from (default 192.168.1.1)"),
			),
			mcp.WithString("router_user",
				mcp.Description("Router admin user; when set, the gateway itself is included in the results"),
			),
			mcp.WithBoolean("scan_ethernet",
				mcp.Description("Also sweep for wired devices"),
			),
		),
		s.handleScanNetwork,
	)

	// Pairing
	s.mcpServer.AddTool(
		mcp.NewTool("start_pairing",
			mcp.WithDescription("Wait in pairing mode for a new device and merge it into the inventory"),
		),
		s.handleStartPairing,
	)

	// Automation suggestions
	s.mcpServer.AddTool(
		mcp.NewTool("suggest_automations",
			mcp.WithDescription("Get three automation ideas for the current device inventory"),
		),
		s.handleSuggestAutomations,
	)

	// Chat
	s.mcpServer.AddTool(
		mcp.NewTool("chat",
			mcp.WithDescription("Ask the HomeNet assistant a free-form question"),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("The message to send"),
			),
		),
		s.handleChat,
	)
}
