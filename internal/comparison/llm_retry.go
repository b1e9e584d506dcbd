package comparison

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"offercompare-backend/internal/llm"
	"offercompare-backend/internal/shared/telemetry"
)

const llmRetryBaseDelay = 300 * time.Millisecond

// retryingLLM retries one transient failure per call. Anything still failing
// after the retry surfaces to the caller, which handles the fallback.
type retryingLLM struct {
	base     llm.Client
	reportID string
}

func newRetryingLLM(base llm.Client, reportID string) llm.Client {
	if base == nil {
		return nil
	}
	return retryingLLM{base: base, reportID: reportID}
}

func (r retryingLLM) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := r.base.Generate(ctx, prompt)
	if err == nil || !shouldRetryLLM(err) {
		return resp, err
	}

	telemetry.Warn("llm.retry", map[string]any{
		"report_id": r.reportID,
		"attempt":   1,
		"error":     err.Error(),
	})
	select {
	case <-time.After(llmRetryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Generate(ctx, prompt)
}

func shouldRetryLLM(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") && (strings.Contains(msg, "openai") || strings.Contains(msg, "llm") || strings.Contains(msg, "client.timeout")) {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
