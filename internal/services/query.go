package services

import (
	"context"
	"fmt"

	"sessionizemcp/internal/domain"
)

// noScheduleMessage is returned when the grid has no days. Events often
// publish speakers and sessions before any times are assigned.
const noScheduleMessage = "No schedule configured for this event yet.\n" +
	"The event organizer may not have assigned times to sessions."

func noResultsFor(itemType, eventID string) string {
	return fmt.Sprintf("No %s found for event: %s", itemType, eventID)
}

func noResultsMatching(itemType, query string) string {
	return fmt.Sprintf("No %s found matching: %s", itemType, query)
}

type eventQueryService struct {
	fetcher domain.EventFetcher
}

// NewEventQueryService returns an EventQueryService that reads through the
// given fetcher on every call. Nothing is cached.
func NewEventQueryService(fetcher domain.EventFetcher) domain.EventQueryService {
	return &eventQueryService{fetcher: fetcher}
}

func (s *eventQueryService) ListSpeakers(ctx context.Context, eventID string) (string, error) {
	speakers, err := s.fetcher.GetSpeakers(ctx, eventID)
	if err != nil {
		return "", err
	}
	if len(speakers) == 0 {
		return noResultsFor("speakers", eventID), nil
	}
	return renderAll(speakers, formatSpeaker), nil
}

func (s *eventQueryService) FindSpeakers(ctx context.Context, eventID, name string) (string, error) {
	speakers, err := s.fetcher.GetSpeakers(ctx, eventID)
	if err != nil {
		return "", err
	}
	if len(speakers) == 0 {
		return noResultsFor("speakers", eventID), nil
	}
	var matches []*domain.Speaker
	for _, speaker := range speakers {
		if speaker != nil && containsIgnoreCase(speaker.FullName, name) {
			matches = append(matches, speaker)
		}
	}
	if len(matches) == 0 {
		return noResultsMatching("speakers", name), nil
	}
	return renderAll(matches, formatSpeakerDetailed), nil
}

// SpeakerSessions renders the sessions of the first speaker whose full name
// contains speakerName. Only the first match is used; FindSpeakers is the
// tool for disambiguating similar names.
func (s *eventQueryService) SpeakerSessions(ctx context.Context, eventID, speakerName string) (string, error) {
	speakers, err := s.fetcher.GetSpeakers(ctx, eventID)
	if err != nil {
		return "", err
	}
	if len(speakers) == 0 {
		return noResultsFor("speakers", eventID), nil
	}
	for _, speaker := range speakers {
		if speaker != nil && containsIgnoreCase(speaker.FullName, speakerName) {
			return formatSpeakerSessions(speaker), nil
		}
	}
	return noResultsMatching("speaker", speakerName), nil
}

func (s *eventQueryService) ListSessions(ctx context.Context, eventID string) (string, error) {
	groups, err := s.fetcher.GetSessions(ctx, eventID)
	if err != nil {
		return "", err
	}
	sessions := flattenSessionGroups(groups)
	if len(sessions) == 0 {
		return noResultsFor("sessions", eventID), nil
	}
	return renderAll(sessions, formatSession), nil
}

func (s *eventQueryService) FindSessions(ctx context.Context, eventID, query string) (string, error) {
	groups, err := s.fetcher.GetSessions(ctx, eventID)
	if err != nil {
		return "", err
	}
	sessions := flattenSessionGroups(groups)
	if len(sessions) == 0 {
		return noResultsFor("sessions", eventID), nil
	}
	var matches []*domain.Session
	for _, session := range sessions {
		if matchesSession(session, query) {
			matches = append(matches, session)
		}
	}
	if len(matches) == 0 {
		return noResultsMatching("sessions", query), nil
	}
	return renderAll(matches, formatSession), nil
}

// matchesSession reports whether query appears in the session title or
// description, case-insensitively.
func matchesSession(session *domain.Session, query string) bool {
	if session == nil {
		return false
	}
	if containsIgnoreCase(session.Title, query) {
		return true
	}
	return session.Description != nil && containsIgnoreCase(*session.Description, query)
}

func (s *eventQueryService) Schedule(ctx context.Context, eventID string) (string, error) {
	days, err := s.fetcher.GetSchedule(ctx, eventID)
	if err != nil {
		return "", err
	}
	if len(days) == 0 {
		return noScheduleMessage, nil
	}
	return formatSchedule(days), nil
}
