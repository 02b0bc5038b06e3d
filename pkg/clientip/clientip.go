package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers commonly set by load balancers and CDNs.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderDOConnectingIP = "DO-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

// Resolver determines the client IP of a request.
//
// Proxy headers are client-controlled unless a trusted proxy overwrites them,
// so a Resolver consults only the headers it was configured with, in order,
// and falls back to the connection's remote address.
type Resolver struct {
	headers []string
}

// New creates a Resolver trusting the given headers in priority order.
// With no headers only RemoteAddr is used.
func New(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: headers}
}

// IP returns the normalized client IP, or an empty string if none can be determined.
func (res *Resolver) IP(r *http.Request) string {
	for _, header := range res.headers {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For style lists hold the original client first.
		for candidate := range strings.SplitSeq(value, ",") {
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

// parseIP validates and normalizes an IP address string.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
