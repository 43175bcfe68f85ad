package handler

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// requestIP resolves the client address: the first comma-separated entry of
// X-Forwarded-For when present, otherwise the direct peer. The header is
// spoofable; this trusts the fronting proxy and is a known limitation.
func requestIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
