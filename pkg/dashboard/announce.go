package dashboard

import (
	"fmt"

	"github.com/enbility/zeroconf/v3"
)

// mDNS service constants.
const (
	// ServiceType is the dashboard mDNS service type.
	ServiceType = "_reefbot-dash._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// protocolVersion is advertised in the TXT record so consoles can
	// reject incompatible robots before connecting.
	protocolVersion = "1"
)

// announcer wraps the zeroconf registration for the dashboard service.
type announcer struct {
	server *zeroconf.Server
}

// announce registers the dashboard service on all interfaces.
func announce(instance string, port int) (*announcer, error) {
	txt := []string{"version=" + protocolVersion}

	server, err := zeroconf.Register(
		instance,
		ServiceType,
		Domain,
		port,
		txt,
		nil, // all interfaces
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register dashboard service: %w", err)
	}
	return &announcer{server: server}, nil
}

// shutdown stops the advertisement.
func (a *announcer) shutdown() {
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}
