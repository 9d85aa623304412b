package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers set by reverse proxies, in the order they are consulted.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
)

// FromRequest returns the normalized client address of r, or "" when none is
// valid. With trustProxy set, CF-Connecting-IP, the first valid entry of
// X-Forwarded-For and X-Real-IP take precedence over RemoteAddr.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := parse(r.Header.Get(HeaderCFConnectingIP)); ip != "" {
			return ip
		}
		for entry := range strings.SplitSeq(r.Header.Get(HeaderForwardedFor), ",") {
			if ip := parse(entry); ip != "" {
				return ip
			}
		}
		if ip := parse(r.Header.Get(HeaderRealIP)); ip != "" {
			return ip
		}
	}
	return RemoteIP(r)
}

// RemoteIP returns the address of the peer connected to the server.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	// IPv4-mapped IPv6 addresses are reported as IPv4; zones are dropped.
	return addr.Unmap().WithZone("").String()
}
