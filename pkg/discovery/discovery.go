// Package discovery produces batches of newly found devices for the add-device
// wizard. There is no real scanning protocol behind it: the Simulator fabricates
// plausible devices from a fixed template catalog, which is all the panel needs.
// The Discoverer interface keeps the door open for a real implementation.
package discovery

import (
	"context"
	"errors"

	"homenet/pkg/registry"
)

// ScanParams are the network details the wizard collects before a scan.
type ScanParams struct {
	SSID         string `json:"ssid"`
	Password     string `json:"password"`
	RouterIP     string `json:"router_ip"`
	RouterUser   string `json:"router_user"`
	RouterPass   string `json:"router_pass"`
	ScanEthernet bool   `json:"scan_ethernet"`
}

// Discoverer finds devices to offer to the user. Both calls block for the
// duration of the scan; the returned batch is meant to be merged into the
// registry after user confirmation.
type Discoverer interface {
	// NetworkScan sweeps the subnet derived from the router IP and returns
	// everything it "finds" there.
	NetworkScan(ctx context.Context, params ScanParams) ([]registry.Device, error)

	// PairingListen waits in pairing mode and returns the single device that
	// announced itself.
	PairingListen(ctx context.Context) ([]registry.Device, error)
}

var (
	// ErrScanInProgress indicates a scan was requested while another one is
	// still pending. The wizard disables its trigger while scanning; the
	// guard here backs that up.
	ErrScanInProgress = errors.New("scan already in progress")
)
