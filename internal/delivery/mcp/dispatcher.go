package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"sessionizemcp/internal/domain"
)

// Fixed dispatcher messages. Missing identifiers are usage errors; empty
// query results are plain text and never reach these.
const (
	eventIDRequiredMessage = "Event ID is required. Provide eventId parameter or set SESSIONIZE_EVENT_ID environment variable."
	requiredParamMessage   = "Required parameter is missing."
	apiErrorPrefix         = "Sessionize API error: "
	internalErrorPrefix    = "Error: "
)

// Notifier delivers a progress or failure notice to the connected client.
// level follows MCP logging levels ("info", "warning", "error"). A nil
// Notifier is valid and means no notices are sent.
type Notifier func(ctx context.Context, level, message string)

// Result is the terminal outcome of one tool invocation: rendered markdown
// or a user-facing error message. Failures are carried in the result, never
// as a Go error.
type Result struct {
	Text    string
	IsError bool
}

func success(text string) Result    { return Result{Text: text} }
func failure(message string) Result { return Result{Text: message, IsError: true} }

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeEventID strips every character outside [A-Za-z0-9]. Sessionize
// event IDs are plain alphanumeric tokens and end up in a URL path segment.
func sanitizeEventID(eventID string) string {
	return nonAlphanumeric.ReplaceAllString(eventID, "")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// send delivers a notice through notify when one is wired.
func send(ctx context.Context, notify Notifier, level, message string) {
	if notify != nil {
		notify(ctx, level, message)
	}
}

// Dispatcher validates tool arguments, resolves the event ID, and runs each
// query on its own goroutine, converting every failure into a Result.
type Dispatcher struct {
	svc            domain.EventQueryService
	defaultEventID string
	logger         *slog.Logger
}

// NewDispatcher returns a Dispatcher backed by svc. defaultEventID may be
// blank, in which case every call must supply an event ID.
func NewDispatcher(svc domain.EventQueryService, defaultEventID string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{svc: svc, defaultEventID: defaultEventID, logger: logger}
}

// resolveEventID returns the sanitized event ID to use: the provided one if
// non-blank, otherwise the configured default, otherwise empty. A provided
// ID that sanitizes to empty does not fall back to the default.
func (d *Dispatcher) resolveEventID(provided string) string {
	if !isBlank(provided) {
		return sanitizeEventID(provided)
	}
	if !isBlank(d.defaultEventID) {
		return sanitizeEventID(d.defaultEventID)
	}
	return ""
}

// dispatch validates the invocation and runs fn on a worker goroutine,
// delivering its Result over a channel. requiredParam, when non-nil, must
// not be blank. The wait is bounded: fn's upstream calls carry ctx, and a
// cancelled ctx yields an error Result immediately.
func (d *Dispatcher) dispatch(ctx context.Context, tool, eventID string, requiredParam *string, notify Notifier, fn func(ctx context.Context, id string) (string, error)) Result {
	id := d.resolveEventID(eventID)
	if id == "" {
		return failure(eventIDRequiredMessage)
	}
	if requiredParam != nil && isBlank(*requiredParam) {
		return failure(requiredParamMessage)
	}
	d.logger.Debug("tool invoked", "tool", tool, "event_id", id)

	results := make(chan Result, 1)
	go func() {
		results <- d.execute(ctx, tool, id, notify, fn)
	}()

	select {
	case res := <-results:
		return res
	case <-ctx.Done():
		return failure(internalErrorPrefix + ctx.Err().Error())
	}
}

// execute runs fn and classifies its outcome. Panics are recovered and
// reported as internal errors so one bad payload cannot take the server
// down.
func (d *Dispatcher) execute(ctx context.Context, tool, eventID string, notify Notifier, fn func(ctx context.Context, id string) (string, error)) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool panicked", "tool", tool, "event_id", eventID, "panic", r)
			res = failure(fmt.Sprintf("%s%v", internalErrorPrefix, r))
		}
	}()

	text, err := fn(ctx, eventID)
	if err == nil {
		return success(text)
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		msg := upstreamErrorMessage(upstream)
		d.logger.Warn("sessionize api error", "tool", tool, "event_id", eventID, "status", upstream.StatusCode)
		send(ctx, notify, "warning", "API error: "+msg)
		return failure(apiErrorPrefix + msg)
	}

	d.logger.Error("tool failed", "tool", tool, "event_id", eventID, "error", err)
	send(ctx, notify, "error", "Error processing request for event: "+eventID)
	return failure(internalErrorPrefix + err.Error())
}

// upstreamErrorMessage maps well-known Sessionize statuses onto fixed
// phrases; anything else passes the underlying message through.
func upstreamErrorMessage(err *domain.UpstreamError) string {
	switch {
	case err.StatusCode == http.StatusNotFound:
		return "Event not found"
	case err.StatusCode == http.StatusForbidden:
		return "Access denied"
	case err.StatusCode == http.StatusTooManyRequests:
		return "Rate limit exceeded"
	case err.StatusCode >= 500:
		return "Sessionize service unavailable"
	default:
		return err.Error()
	}
}

// GetSpeakers lists every speaker for the event.
func (d *Dispatcher) GetSpeakers(ctx context.Context, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "getSpeakers", eventID, nil, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Fetching speakers for event: %s", id))
		return d.svc.ListSpeakers(ctx, id)
	})
}

// FindSpeaker searches speakers by name, case-insensitively.
func (d *Dispatcher) FindSpeaker(ctx context.Context, name, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "findSpeaker", eventID, &name, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Searching speaker '%s' in event: %s", name, id))
		return d.svc.FindSpeakers(ctx, id, name)
	})
}

// GetSessionsBySpeaker renders the session list of the first speaker whose
// name matches speakerName.
func (d *Dispatcher) GetSessionsBySpeaker(ctx context.Context, speakerName, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "getSessionsBySpeaker", eventID, &speakerName, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Getting sessions for speaker '%s' in event: %s", speakerName, id))
		return d.svc.SpeakerSessions(ctx, id, speakerName)
	})
}

// GetSessions lists every session for the event across all groups.
func (d *Dispatcher) GetSessions(ctx context.Context, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "getSessions", eventID, nil, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Fetching sessions for event: %s", id))
		return d.svc.ListSessions(ctx, id)
	})
}

// FindSession searches sessions by title or description, case-insensitively.
func (d *Dispatcher) FindSession(ctx context.Context, query, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "findSession", eventID, &query, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Searching sessions for '%s' in event: %s", query, id))
		return d.svc.FindSessions(ctx, id, query)
	})
}

// GetSchedule renders the full schedule grid for the event.
func (d *Dispatcher) GetSchedule(ctx context.Context, eventID string, notify Notifier) Result {
	return d.dispatch(ctx, "getSchedule", eventID, nil, notify, func(ctx context.Context, id string) (string, error) {
		send(ctx, notify, "info", fmt.Sprintf("Fetching schedule for event: %s", id))
		return d.svc.Schedule(ctx, id)
	})
}
