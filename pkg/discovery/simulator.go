package discovery

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"homenet/pkg/registry"
)

// Default delays match the pacing of the original wizard. They exist purely
// so the scan feels like work; tests set them to zero.
const (
	DefaultScanDelay    = 3500 * time.Millisecond
	DefaultPairingDelay = 4 * time.Second
)

// fallbackSubnet is used when the router IP cannot be parsed into octets.
const fallbackSubnet = "192.168.1"

// wifiTemplate is one entry of the fixed catalog the simulator "discovers" from.
type wifiTemplate struct {
	name   string
	typ    registry.DeviceType
	model  string
	prefix string
}

var wifiCatalog = []wifiTemplate{
	{"Kitchen Smart Plug", registry.TypePlug, "TP-LINK-HS110", "PLG"},
	{"Bedroom LED Strip", registry.TypeLight, "LIFX-Z-STRIP", "LFX"},
	{"Garage Cam", registry.TypeCamera, "WYZE-CAM-V3", "CAM"},
	{"Living Room Sonos", registry.TypeSpeaker, "SONOS-ONE-GEN2", "SPK"},
	{"Main Thermostat", registry.TypeThermostat, "ECOBEE-SMART", "THM"},
}

// Simulator is the scripted Discoverer. It is deterministic for a fixed seed,
// which is what the tests rely on. A Simulator rejects overlapping scans;
// create one per session, not per request.
type Simulator struct {
	rng          *rand.Rand
	scanDelay    time.Duration
	pairingDelay time.Duration
	now          func() time.Time

	busy atomic.Bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes the simulator's random choices reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithDelays overrides the simulated scan and pairing durations.
func WithDelays(scan, pairing time.Duration) Option {
	return func(s *Simulator) {
		s.scanDelay = scan
		s.pairingDelay = pairing
	}
}

// WithClock overrides the time source used for generated device IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// NewSimulator creates a Simulator with production pacing and a time-based seed.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		scanDelay:    DefaultScanDelay,
		pairingDelay: DefaultPairingDelay,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NetworkScan fabricates a batch of devices on the subnet derived from the
// router IP: the gateway itself when router credentials were given, 2-4
// entries from the Wi-Fi catalog, and two fixed wired devices when the
// Ethernet sweep is enabled.
func (s *Simulator) NetworkScan(ctx context.Context, params ScanParams) ([]registry.Device, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer s.busy.Store(false)

	if err := s.wait(ctx, s.scanDelay); err != nil {
		return nil, err
	}

	subnet := subnetPrefix(params.RouterIP)
	stamp := s.now().UnixMilli()
	var found []registry.Device

	if params.RouterUser != "" {
		found = append(found, registry.Device{
			ID:             fmt.Sprintf("dev-%d-gw", stamp),
			Name:           "Network Gateway / Router",
			Type:           registry.TypeHub,
			Room:           "Utility",
			Status:         registry.StatusOnline,
			ConnectionType: registry.ConnEthernet,
			SerialNumber:   s.randomMAC(),
			IPAddress:      params.RouterIP,
			ModelNumber:    "RT-AX86U",
		})
	}

	numToFind := s.rng.Intn(3) + 2
	for i, pick := range s.rng.Perm(len(wifiCatalog))[:numToFind] {
		tpl := wifiCatalog[pick]
		found = append(found, registry.Device{
			ID:             fmt.Sprintf("dev-%d-%d", stamp, i),
			Name:           tpl.name,
			Type:           tpl.typ,
			Room:           registry.RoomUnassigned,
			Status:         registry.StatusOn, // powered on, or it would not answer
			ConnectionType: registry.ConnWiFi,
			SerialNumber:   s.randomSerial(tpl.prefix),
			IPAddress:      fmt.Sprintf("%s.%d", subnet, s.rng.Intn(200)+10),
			ModelNumber:    tpl.model,
		})
	}

	if params.ScanEthernet {
		found = append(found,
			registry.Device{
				ID:             fmt.Sprintf("dev-%d-eth-hue", stamp),
				Name:           "Philips Hue Bridge",
				Type:           registry.TypeHub,
				Room:           "Living Room",
				Status:         registry.StatusOnline,
				ConnectionType: registry.ConnEthernet,
				SerialNumber:   "001788FFFE2345",
				IPAddress:      subnet + ".5",
				ModelNumber:    "BSB002",
			},
			registry.Device{
				ID:             fmt.Sprintf("dev-%d-eth-tv", stamp),
				Name:           "Smart TV (Ethernet)",
				Type:           registry.TypeLight,
				Room:           "Living Room",
				Status:         registry.StatusOff,
				ConnectionType: registry.ConnEthernet,
				SerialNumber:   s.randomSerial("TV"),
				IPAddress:      subnet + ".15",
				ModelNumber:    "LG-OLED-C1",
			},
		)
	}

	log.Info().Int("found", len(found)).Str("subnet", subnet).Msg("network scan finished")
	return found, nil
}

// PairingListen fabricates the one device that joins while in pairing mode.
func (s *Simulator) PairingListen(ctx context.Context) ([]registry.Device, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer s.busy.Store(false)

	if err := s.wait(ctx, s.pairingDelay); err != nil {
		return nil, err
	}

	d := registry.Device{
		ID:             fmt.Sprintf("dev-%d-pair", s.now().UnixMilli()),
		Name:           "New Zigbee Bulb",
		Type:           registry.TypeLight,
		Room:           "Bedroom",
		Status:         registry.StatusOn,
		Value:          "100%",
		ConnectionType: registry.ConnZigbee,
		SerialNumber:   s.randomSerial("ZIG"),
		IPAddress:      "N/A (Zigbee Mesh)",
		ModelNumber:    "TRADFRI-E27-WS",
	}

	log.Info().Str("device", d.Name).Msg("pairing finished")
	return []registry.Device{d}, nil
}

// wait sleeps for the simulated duration, honouring context cancellation.
func (s *Simulator) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// subnetPrefix takes the first three octets of the router IP, or the
// fallback when the address does not split into four parts.
func subnetPrefix(routerIP string) string {
	parts := strings.Split(routerIP, ".")
	if len(parts) != 4 {
		return fallbackSubnet
	}
	return strings.Join(parts[:3], ".")
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomSerial builds serials like "PLG-8F2K1Q": prefix plus six random
// base-36 characters, upper-cased.
func (s *Simulator) randomSerial(prefix string) string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[s.rng.Intn(len(base36))])
	}
	return prefix + "-" + strings.ToUpper(b.String())
}

const hexDigits = "0123456789ABCDEF"

// randomMAC builds a MAC-format serial; routers usually report their MAC in
// place of a serial number.
func (s *Simulator) randomMAC() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteByte(hexDigits[s.rng.Intn(16)])
		b.WriteByte(hexDigits[s.rng.Intn(16)])
	}
	return b.String()
}
