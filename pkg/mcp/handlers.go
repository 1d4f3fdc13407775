package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"homenet/pkg/discovery"
	"homenet/pkg/registry"
)

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.store.Devices()
	devices = registry.Search(devices, optionalString(request, "query"))
	devices = registry.FilterByType(devices, optionalString(request, "type"))

	out := ListDevicesOutput{
		Devices:     devices,
		Count:       len(devices),
		ActiveCount: registry.ActiveCount(devices),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", id)), nil
	}

	return mcp.NewToolResultText(formatJSON(GetDeviceOutput{Device: d})), nil
}

func (s *Server) handleToggleDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.store.ToggleStatus(id)

	out := MutationOutput{}
	if d, err := s.store.Get(id); err == nil {
		out.Applied = true
		out.Device = &d
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleAssignRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.store.AssignRoom(id, optionalString(request, "room"))

	out := MutationOutput{}
	if d, err := s.store.Get(id); err == nil {
		out.Applied = true
		out.Device = &d
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListAutomations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	automations := s.store.Automations()
	out := ListAutomationsOutput{
		Automations: automations,
		Count:       len(automations),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleScanNetwork(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := discovery.ScanParams{
		RouterIP:   optionalString(request, "router_ip"),
		RouterUser: optionalString(request, "router_user"),
	}
	if params.RouterIP == "" {
		params.RouterIP = "192.168.1.1"
	}
	if v, ok := request.GetArguments()["scan_ethernet"].(bool); ok {
		params.ScanEthernet = v
	}

	found, err := s.discoverer.NetworkScan(ctx, params)
	if err != nil {
		if errors.Is(err, discovery.ErrScanInProgress) {
			return mcp.NewToolResultError("a discovery run is already in progress"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %s", err)), nil
	}

	// Unlike the wizard, an LLM client has no separate confirmation step,
	// so the findings go straight into the inventory.
	merged := s.store.Merge(found)

	out := DiscoveryOutput{Found: found, Merged: merged, Total: s.store.Len()}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleStartPairing(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	found, err := s.discoverer.PairingListen(ctx)
	if err != nil {
		if errors.Is(err, discovery.ErrScanInProgress) {
			return mcp.NewToolResultError("a discovery run is already in progress"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("pairing failed: %s", err)), nil
	}

	merged := s.store.Merge(found)

	out := DiscoveryOutput{Found: found, Merged: merged, Total: s.store.Len()}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSuggestAutomations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.store.Devices()
	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.Name)
	}

	out := SuggestAutomationsOutput{
		Suggestions: s.assistant.SuggestAutomations(ctx, names),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := requiredString(request, "message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := ChatOutput{Reply: s.assistant.Chat(ctx, message)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	if v, ok := request.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
