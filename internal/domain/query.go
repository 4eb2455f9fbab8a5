package domain

import "context"

// EventQueryService defines the business logic for answering speaker,
// session, and schedule questions about one event. Results are rendered
// markdown; an empty result is text, never an error. The eventID must
// already be sanitized by the caller.
type EventQueryService interface {
	ListSpeakers(ctx context.Context, eventID string) (string, error)
	FindSpeakers(ctx context.Context, eventID, name string) (string, error)
	SpeakerSessions(ctx context.Context, eventID, speakerName string) (string, error)
	ListSessions(ctx context.Context, eventID string) (string, error)
	FindSessions(ctx context.Context, eventID, query string) (string, error)
	Schedule(ctx context.Context, eventID string) (string, error)
}
