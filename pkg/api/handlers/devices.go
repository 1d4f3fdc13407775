package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"homenet/pkg/api/types"
	"homenet/pkg/registry"
	"homenet/pkg/registry/schema"
)

// DevicesHandler handles the device inventory endpoints
type DevicesHandler struct {
	store     *registry.Store
	validator *schema.Validator
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(store *registry.Store, validator *schema.Validator) *DevicesHandler {
	return &DevicesHandler{store: store, validator: validator}
}

// ListDevices handles GET /devices
// @Summary      List devices
// @Description  Returns the device inventory, optionally searched, filtered by type, or grouped by room
// @Tags         devices
// @Produce      json
// @Param        q         query  string  false  "Search term (matches name, IP, serial, ID)"
// @Param        type      query  string  false  "Device type filter, or 'All'"
// @Param        group_by  query  string  false  "Set to 'room' for a room-grouped response"
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	devices := h.store.Devices()
	devices = registry.Search(devices, c.Query("q"))
	devices = registry.FilterByType(devices, c.Query("type"))
	active := registry.ActiveCount(devices)

	if c.Query("group_by") == "room" {
		groups := registry.GroupByRoom(devices)
		rooms := make([]types.RoomGroup, 0, len(groups))
		for _, room := range registry.Rooms(groups) {
			rooms = append(rooms, types.RoomGroup{Room: room, Devices: groups[room]})
		}
		c.JSON(http.StatusOK, types.GroupedDevicesResponse{
			Rooms:       rooms,
			Count:       len(devices),
			ActiveCount: active,
		})
		return
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices:     devices,
		Count:       len(devices),
		ActiveCount: active,
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	d, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "registry_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{Device: d})
}

// ToggleDevice handles POST /devices/:id/toggle
// @Summary      Toggle a device
// @Description  Flips a device between on and off. Unknown IDs and online/offline devices are a no-op; the panel never surfaces a toggle failure.
// @Tags         devices
// @Produce      json
// @Param        id   path  string  true  "Device ID"
// @Success      204  "Toggle applied (or silently ignored)"
// @Router       /devices/{id}/toggle [post]
func (h *DevicesHandler) ToggleDevice(c *gin.Context) {
	h.store.ToggleStatus(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// AssignRoom handles PATCH /devices/:id/room
// @Summary      Assign a device to a room
// @Description  Moves a device to a room; an empty room moves it back to Unassigned. Unknown IDs are a no-op.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path  string                    true  "Device ID"
// @Param        request  body  types.AssignRoomRequest   true  "Target room"
// @Success      204  "Assignment applied (or silently ignored)"
// @Failure      400  {object}  types.ErrorResponse  "Invalid request"
// @Router       /devices/{id}/room [patch]
func (h *DevicesHandler) AssignRoom(c *gin.Context) {
	var req types.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	h.store.AssignRoom(c.Param("id"), req.Room)
	c.Status(http.StatusNoContent)
}

// ImportDevices handles POST /devices/import
// @Summary      Import a device batch
// @Description  Merges a batch of discovered devices into the registry. Devices whose ID already exists are dropped; the existing entry wins. The call is idempotent.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        request  body      []registry.Device  true  "Devices to merge"
// @Success      200      {object}  types.ImportDevicesResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid batch"
// @Router       /devices/import [post]
func (h *DevicesHandler) ImportDevices(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Could not read request body",
		})
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
		return
	}
	if err := h.validator.Validate(schema.DeviceBatch, payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	var batch []registry.Device
	if err := json.Unmarshal(body, &batch); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	added := h.store.Merge(batch)
	devicesMerged.Add(float64(added))

	c.JSON(http.StatusOK, types.ImportDevicesResponse{
		Added: added,
		Total: h.store.Len(),
	})
}
