package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestEvent is the record written for every LLM call.
type RequestEvent struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RequestLog receives RequestEvents. Implemented by the sqlite store;
// kept as an interface here so this package stays free of storage
// concerns and tests can capture events.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider decorates a Provider, recording each request as an
// event. Logging failures never fail the request.
type LoggingProvider struct {
	inner     Provider
	log       RequestLog
	sessionID string
}

// WithLogging wraps p so every Generate call is recorded to log, stamped
// with sessionID.
func WithLogging(p Provider, log RequestLog, sessionID string) Provider {
	return &LoggingProvider{inner: p, log: log, sessionID: sessionID}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		SessionID:   l.sessionID,
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	if logErr := l.log.AppendLLMRequest(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable transcript of the request.
func serializeRequest(req Request) string {
	s := ""
	if req.System != "" {
		s += "[system]\n" + req.System + "\n\n"
	}
	s += "[user]\n" + req.Prompt + "\n"
	if req.Schema != nil {
		s += fmt.Sprintf("\n[schema: %s]\n", req.Schema.Name)
	}
	return s
}
