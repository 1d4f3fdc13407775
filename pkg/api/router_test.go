package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homenet/pkg/api/types"
	"homenet/pkg/discovery"
	"homenet/pkg/registry"
)

// stubAssistant answers with canned content so handler tests never reach the
// network.
type stubAssistant struct{}

func (stubAssistant) SuggestAutomations(ctx context.Context, deviceNames []string) []string {
	return []string{"A: one", "B: two", "C: three"}
}

func (stubAssistant) Chat(ctx context.Context, message string) string {
	return "echo: " + message
}

func (stubAssistant) Configured() bool { return false }

func newTestRouter(t *testing.T) (*Router, *registry.Store) {
	t.Helper()
	store := registry.NewSeededStore()
	sim := discovery.NewSimulator(
		discovery.WithSeed(1),
		discovery.WithDelays(time.Millisecond, time.Millisecond),
	)
	return NewRouter(store, sim, stubAssistant{}), store
}

func serve(t *testing.T, r *Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.DeviceCount != 6 {
		t.Errorf("device_count = %d, want 6", resp.DeviceCount)
	}
	if resp.Assistant != "fallback" {
		t.Errorf("assistant = %q, want fallback", resp.Assistant)
	}
}

func TestListDevices(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/api/v1/devices", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.ListDevicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 6 || len(resp.Devices) != 6 {
		t.Errorf("count = %d, devices = %d, want 6", resp.Count, len(resp.Devices))
	}
	if resp.ActiveCount != 3 {
		t.Errorf("active_count = %d, want 3", resp.ActiveCount)
	}
}

func TestListDevices_SearchAndFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/api/v1/devices?q=thermostat", "")
	var resp types.ListDevicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Devices[0].ID != "3" {
		t.Errorf("search result = %+v, want only the thermostat", resp.Devices)
	}

	w = serve(t, r, http.MethodGet, "/api/v1/devices?type=light", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, d := range resp.Devices {
		if d.Type != registry.TypeLight {
			t.Errorf("device %s type = %s, want light", d.ID, d.Type)
		}
	}
}

func TestListDevices_GroupByRoom(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/api/v1/devices?group_by=room", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.GroupedDevicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rooms := make([]string, len(resp.Rooms))
	for i, g := range resp.Rooms {
		rooms[i] = g.Room
	}
	want := []string{"Bedroom", "Entrance", "Hallway", "Kitchen", "Living Room"}
	if len(rooms) != len(want) {
		t.Fatalf("rooms = %v, want %v", rooms, want)
	}
	for i := range want {
		if rooms[i] != want[i] {
			t.Errorf("rooms[%d] = %q, want %q", i, rooms[i], want[i])
		}
	}
}

func TestGetDevice(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/api/v1/devices/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.DeviceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Device.Name != "Living Room Lights" {
		t.Errorf("name = %q, want Living Room Lights", resp.Device.Name)
	}

	w = serve(t, r, http.MethodGet, "/api/v1/devices/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestToggleDevice(t *testing.T) {
	r, store := newTestRouter(t)

	w := serve(t, r, http.MethodPost, "/api/v1/devices/1/toggle", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	d, err := store.Get("1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Status != registry.StatusOff {
		t.Errorf("status = %s, want off", d.Status)
	}

	// Unknown IDs never fail the request
	w = serve(t, r, http.MethodPost, "/api/v1/devices/nope/toggle", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}

func TestAssignRoom(t *testing.T) {
	r, store := newTestRouter(t)

	w := serve(t, r, http.MethodPatch, "/api/v1/devices/1/room", `{"room":"Office"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	d, _ := store.Get("1")
	if d.Room != "Office" {
		t.Errorf("room = %q, want Office", d.Room)
	}

	w = serve(t, r, http.MethodPatch, "/api/v1/devices/1/room", `{"room":""}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	d, _ = store.Get("1")
	if d.Room != registry.RoomUnassigned {
		t.Errorf("room = %q, want %q", d.Room, registry.RoomUnassigned)
	}
}

func TestImportDevices(t *testing.T) {
	r, store := newTestRouter(t)

	batch := `[
		{"id":"new-1","name":"Patio Light","type":"light","status":"off","connection_type":"wifi"},
		{"id":"1","name":"Duplicate","type":"light","status":"off"}
	]`
	w := serve(t, r, http.MethodPost, "/api/v1/devices/import", batch)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.ImportDevicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Added != 1 {
		t.Errorf("added = %d, want 1 (duplicate skipped)", resp.Added)
	}
	if resp.Total != 7 {
		t.Errorf("total = %d, want 7", resp.Total)
	}

	// The duplicate must not overwrite the seeded device
	d, _ := store.Get("1")
	if d.Name != "Living Room Lights" {
		t.Errorf("name = %q, want Living Room Lights", d.Name)
	}
}

func TestImportDevices_InvalidBatch(t *testing.T) {
	r, _ := newTestRouter(t)

	// Missing required name
	w := serve(t, r, http.MethodPost, "/api/v1/devices/import", `[{"id":"x","type":"light","status":"off"}]`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = serve(t, r, http.MethodPost, "/api/v1/devices/import", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListAutomations(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodGet, "/api/v1/automations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.ListAutomationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 3 {
		t.Errorf("count = %d, want 3", resp.Count)
	}
}

func TestDiscoveryScan(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodPost, "/api/v1/discovery/scan", `{"router_ip":"192.168.1.1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.ScanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count == 0 {
		t.Error("scan found no devices")
	}
	for _, d := range resp.Devices {
		if !strings.HasPrefix(d.IPAddress, "192.168.1.") {
			t.Errorf("device %s ip = %q, want 192.168.1.x", d.ID, d.IPAddress)
		}
	}
}

func TestDiscoveryPairing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodPost, "/api/v1/discovery/pairing", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.ScanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
}

func TestAssistantEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, http.MethodPost, "/api/v1/assistant/suggestions", `{"device_names":["Smart Light"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var sresp types.SuggestionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &sresp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(sresp.Suggestions) != 3 {
		t.Errorf("suggestions = %d, want 3", len(sresp.Suggestions))
	}

	w = serve(t, r, http.MethodPost, "/api/v1/assistant/chat", `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var cresp types.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &cresp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cresp.Reply != "echo: hi" {
		t.Errorf("reply = %q, want echo: hi", cresp.Reply)
	}

	w = serve(t, r, http.MethodPost, "/api/v1/assistant/chat", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
