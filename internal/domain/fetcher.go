package domain

import "context"

// EventFetcher fetches event data from Sessionize (or a test double).
// A nil slice with a nil error is a valid response: the event has no data
// of that kind yet.
type EventFetcher interface {
	GetSpeakers(ctx context.Context, eventID string) ([]*Speaker, error)
	GetSessions(ctx context.Context, eventID string) ([]*SessionGroup, error)
	GetSchedule(ctx context.Context, eventID string) ([]*GridDay, error)
}
