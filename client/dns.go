package client

import (
	"context"
	"fmt"
	"net"
	"strings"
)

// resolveServerAddress follows the game's own connection-string rule: try
// an SRV record at _minecraft._tcp.<host> first (lets server operators
// point a bare hostname at a different host:port), falling back to the
// literal host:port when no SRV record exists or the host already carries
// an explicit port.
func resolveServerAddress(ctx context.Context, resolver *net.Resolver, host string, port uint16) (string, uint16, error) {
	if strings.Contains(host, ":") {
		h, p, err := net.SplitHostPort(host)
		if err != nil {
			return "", 0, fmt.Errorf("split host:port %q: %w", host, err)
		}
		var parsedPort uint16
		if _, err := fmt.Sscanf(p, "%d", &parsedPort); err != nil {
			return "", 0, fmt.Errorf("parse port %q: %w", p, err)
		}
		return h, parsedPort, nil
	}

	_, srvs, err := resolver.LookupSRV(ctx, "minecraft", "tcp", host)
	if err == nil && len(srvs) > 0 {
		target := strings.TrimSuffix(srvs[0].Target, ".")
		return target, srvs[0].Port, nil
	}

	return host, port, nil
}
