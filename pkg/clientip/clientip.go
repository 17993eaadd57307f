package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client address of r using DefaultHeaders.
func GetIP(r *http.Request) string {
	return FromHeaders(r, DefaultHeaders...)
}

// FromHeaders returns the first valid address found in headers (for
// comma-separated headers such as X-Forwarded-For, the left-most valid entry),
// falling back to the host part of RemoteAddr. Invalid values are skipped;
// an empty string means nothing usable was found.
func FromHeaders(r *http.Request, headers ...string) string {
	for _, name := range headers {
		for candidate := range strings.SplitSeq(r.Header.Get(name), ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
