// Package quota enforces the daily message allowance for anonymous callers.
package quota

import (
	"context"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/logger"
)

// MessageCounter reports how many messages a caller has sent today.
type MessageCounter interface {
	CountUserMessagesToday(ctx context.Context, userId string) (int64, error)
}

// Gate decides whether a caller may send another message today. It only
// reads the counter; the send itself is what consumes quota, so a request
// that later fails costs nothing.
type Gate struct {
	counter  MessageCounter
	limit    int
	adminIPs map[string]struct{}
	logger   logger.ILogger
}

func NewGate(counter MessageCounter, limit int, adminIPs []string, log logger.ILogger) *Gate {
	ips := make(map[string]struct{}, len(adminIPs))
	for _, ip := range adminIPs {
		ips[ip] = struct{}{}
	}
	return &Gate{
		counter:  counter,
		limit:    limit,
		adminIPs: ips,
		logger:   log,
	}
}

// IsAdmin reports whether the client IP is on the unlimited allow-list.
func (g *Gate) IsAdmin(clientIP string) bool {
	_, ok := g.adminIPs[clientIP]
	return ok
}

// Check returns a LimitExceededError when the caller has spent today's
// allowance. Admin IPs always pass. A broken counter fails open: blocking
// every user over a counting error is worse than a few free messages.
func (g *Gate) Check(ctx context.Context, userId, clientIP string) error {
	if g.IsAdmin(clientIP) {
		g.logger.Info("Quota", "Admin caller, limit bypassed", map[string]interface{}{
			"clientIP": clientIP,
		})
		return nil
	}

	usage, err := g.counter.CountUserMessagesToday(ctx, userId)
	if err != nil {
		g.logger.Error("Quota", "Usage count failed, allowing request", map[string]interface{}{
			"error":  err.Error(),
			"userId": userId,
		})
		usage = 0
	}

	if int(usage) >= g.limit {
		return &dto.LimitExceededError{
			DailyUsage: int(usage),
			DailyLimit: g.limit,
		}
	}
	return nil
}

// Usage returns today's spent count for display. Errors fail soft to zero.
func (g *Gate) Usage(ctx context.Context, userId string) int {
	usage, err := g.counter.CountUserMessagesToday(ctx, userId)
	if err != nil {
		g.logger.Error("Quota", "Usage count failed", map[string]interface{}{
			"error":  err.Error(),
			"userId": userId,
		})
		return 0
	}
	return int(usage)
}

// Limit exposes the configured daily allowance.
func (g *Gate) Limit() int {
	return g.limit
}
