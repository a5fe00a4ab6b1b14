package loader

import (
	"net/http"
	"strings"
)

const (
	HeaderForwardedProto = "X-Forwarded-Proto"
	HeaderOrigin         = "Origin"
)

// Request is the inbound request context visible to the loader.
type Request interface {
	Header(name string) string
	MarkHTTPS()
}

// HTTPRequest adapts a *http.Request. HTTPS is set once MarkHTTPS is called.
type HTTPRequest struct {
	Req   *http.Request
	HTTPS bool
}

func NewHTTPRequest(r *http.Request) *HTTPRequest {
	return &HTTPRequest{Req: r, HTTPS: r != nil && r.TLS != nil}
}

func (h *HTTPRequest) Header(name string) string {
	if h.Req == nil {
		return ""
	}
	return h.Req.Header.Get(name)
}

func (h *HTTPRequest) MarkHTTPS() {
	h.HTTPS = true
}

func forwardedHTTPS(proto string, mode HTTPSDetection) bool {
	if mode == HTTPSLegacy {
		return proto != "" && proto != "0"
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}
