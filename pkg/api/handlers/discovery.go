package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homenet/pkg/api/types"
	"homenet/pkg/discovery"
)

// DiscoveryHandler handles the add-device wizard's discovery endpoints.
// The returned batches are previews: nothing enters the registry until the
// client confirms and posts the batch to /devices/import.
type DiscoveryHandler struct {
	discoverer discovery.Discoverer
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discoverer discovery.Discoverer) *DiscoveryHandler {
	return &DiscoveryHandler{discoverer: discoverer}
}

// NetworkScan handles POST /discovery/scan
// @Summary      Scan the network for devices
// @Description  Sweeps the subnet derived from the router IP and returns the devices found. Blocks for the duration of the scan.
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Param        request  body      discovery.ScanParams  true  "Network parameters"
// @Success      200      {object}  types.ScanResponse
// @Failure      409      {object}  types.ErrorResponse  "A scan is already running"
// @Router       /discovery/scan [post]
func (h *DiscoveryHandler) NetworkScan(c *gin.Context) {
	var params discovery.ScanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	found, err := h.discoverer.NetworkScan(c.Request.Context(), params)
	if err != nil {
		h.scanError(c, "network", err)
		return
	}

	scansTotal.WithLabelValues("network", "ok").Inc()
	c.JSON(http.StatusOK, types.ScanResponse{Devices: found, Count: len(found)})
}

// Pairing handles POST /discovery/pairing
// @Summary      Listen for a pairing device
// @Description  Waits in pairing mode and returns the device that announced itself. Blocks for the duration of the pairing window.
// @Tags         discovery
// @Produce      json
// @Success      200  {object}  types.ScanResponse
// @Failure      409  {object}  types.ErrorResponse  "A scan is already running"
// @Router       /discovery/pairing [post]
func (h *DiscoveryHandler) Pairing(c *gin.Context) {
	found, err := h.discoverer.PairingListen(c.Request.Context())
	if err != nil {
		h.scanError(c, "pairing", err)
		return
	}

	scansTotal.WithLabelValues("pairing", "ok").Inc()
	c.JSON(http.StatusOK, types.ScanResponse{Devices: found, Count: len(found)})
}

func (h *DiscoveryHandler) scanError(c *gin.Context, mode string, err error) {
	scansTotal.WithLabelValues(mode, "error").Inc()

	if errors.Is(err, discovery.ErrScanInProgress) {
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Error:   "scan_in_progress",
			Message: "A discovery run is already in progress",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Error:   "discovery_error",
		Message: err.Error(),
	})
}
