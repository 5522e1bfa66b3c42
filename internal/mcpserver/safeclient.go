package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// blockedIP reports whether an address must never be fetched on behalf of
// an MCP client: private ranges, loopback, link-local, and unspecified.
func blockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// newGuardedHTTPClient builds the client used to fetch tool-supplied
// document URLs. Hosts are resolved before dialing and re-checked on every
// redirect; any resolution to a blocked range aborts the request. Without
// this an MCP client could point the document tools at internal services.
func newGuardedHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
				if err != nil {
					return nil, err
				}
				if len(ips) == 0 {
					return nil, fmt.Errorf("no addresses resolved for host: %s", host)
				}
				for _, resolved := range ips {
					if blockedIP(resolved.IP) {
						return nil, fmt.Errorf("refusing to fetch from private or loopback address: %s (%s)", host, resolved.IP)
					}
				}
				// Dial the address we vetted, not whatever a second lookup
				// might return.
				return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			host := req.URL.Hostname()
			ips, err := net.DefaultResolver.LookupIPAddr(req.Context(), host)
			if err != nil {
				return err
			}
			for _, resolved := range ips {
				if blockedIP(resolved.IP) {
					return fmt.Errorf("refusing redirect to private or loopback address: %s (%s)", host, resolved.IP)
				}
			}
			return nil
		},
	}
}
