package jobcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

var (
	keyDebateID  contextKey = "debate_id"
	keyTickSeq   contextKey = "tick_seq"
	keyStartTime contextKey = "tick_start_time"
)

// TickBegin derives a context for one scheduler tick. The timeout bounds
// the external generation and judging calls that run inside the tick.
func TickBegin(parent context.Context, debateID uuid.UUID, tickSeq uint64) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
	ctx = context.WithValue(ctx, keyDebateID, debateID)
	ctx = context.WithValue(ctx, keyTickSeq, tickSeq)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx, cancel
}

// GetDebateID extracts the debate id from a tick context
func GetDebateID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyDebateID).(uuid.UUID)
	return id, ok
}

// GetTickSeq extracts the tick sequence number from a tick context
func GetTickSeq(ctx context.Context) uint64 {
	seq, ok := ctx.Value(keyTickSeq).(uint64)
	if !ok {
		return 0
	}
	return seq
}

// GetStartTime extracts the tick start time from a tick context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyStartTime).(time.Time)
	return start, ok
}

// IsRetryableError reports whether a provider call error is transient
// and worth retrying at the transport level. Retryable errors include
// network failures, timeouts, rate limits and server errors.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Context errors (timeout, cancelled)
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	return false
}
