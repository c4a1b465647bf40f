package httputil

import "net/http"

// ClientMeta is the request metadata stored alongside a response.
type ClientMeta struct {
	UserAgent string
	IP        string
	Referer   string
	Browser   string
}

// MetaFromRequest extracts client metadata, preferring proxy-provided
// real-ip headers over the transport address.
func MetaFromRequest(r *http.Request) ClientMeta {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ClientMeta{
		UserAgent: r.Header.Get("User-Agent"),
		IP:        ip,
		Referer:   r.Header.Get("Referer"),
		Browser:   r.Header.Get("Sec-Ch-Ua"),
	}
}
