package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownAddress is the rate-limit key used when no client address can be
// determined. All such requests share one budget.
const UnknownAddress = "unknown"

// GetRealIP extracts the client IP used as the rate-limit key, respecting
// reverse proxies. This function is used consistently across the
// application to ensure one address maps to one budget.
func GetRealIP(c *gin.Context) string {
	// X-Forwarded-For can be a comma-separated list
	// Format: client, proxy1, proxy2, ...
	// We want the first (leftmost) IP which is the client
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		clientIP := strings.TrimSpace(ips[0])
		if clientIP != "" {
			return clientIP
		}
	}

	// X-Real-IP is set by single-hop proxies
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return UnknownAddress
}
