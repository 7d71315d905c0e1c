package serverutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ClientIP resolves the caller's address, preferring the first hop of
// X-Forwarded-For and stripping the IPv6-mapped IPv4 prefix.
func ClientIP(ctx *fiber.Ctx) string {
	ip := ctx.Get("X-Forwarded-For")
	if ip != "" {
		ip = strings.TrimSpace(strings.Split(ip, ",")[0])
	} else {
		ip = ctx.IP()
	}

	if strings.Contains(ip, "::ffff:") {
		ip = strings.ReplaceAll(ip, "::ffff:", "")
	}

	if ip == "" {
		return "unknown"
	}
	return ip
}

// UserIdentity derives the opaque caller id used to key conversations and
// quota. There are no accounts; identity is the client-provided id pinned to
// the caller's IP so ids cannot be hopped between addresses.
func UserIdentity(ctx *fiber.Ctx) string {
	ip := ClientIP(ctx)

	clientUserId := ctx.Get("X-User-Id")
	if clientUserId != "" {
		parts := strings.Split(clientUserId, "_")
		shortId := parts[len(parts)-1]
		if shortId == "" {
			shortId = "unknown"
		}
		return fmt.Sprintf("user_%s_%s", nonAlnum.ReplaceAllString(ip, ""), shortId)
	}

	// Anonymous fallback: fresh id per request, quota still applies per IP-derived id
	return fmt.Sprintf("user_%s_%s", nonAlnum.ReplaceAllString(ip, ""), uuid.NewString()[:8])
}
