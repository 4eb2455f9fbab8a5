package services

import (
	"strings"

	"sessionizemcp/internal/domain"
)

// markdownSeparator joins independently rendered items in one response.
const markdownSeparator = "\n---\n"

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// safeString returns s, or "Unknown" when s is blank.
func safeString(s string) string {
	if isBlank(s) {
		return "Unknown"
	}
	return s
}

func containsIgnoreCase(text, search string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(search))
}

// renderAll renders every item, keeping one separator slot per element so
// output stays aligned with the upstream sequence.
func renderAll[T any](items []T, format func(T) string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, format(item))
	}
	return strings.Join(parts, markdownSeparator)
}

// formatSpeaker renders the speaker heading with tagline and bio. Blank
// fields are omitted; a nil speaker renders as empty.
func formatSpeaker(speaker *domain.Speaker) string {
	if speaker == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("## " + safeString(speaker.FullName) + "\n")
	if !isBlank(speaker.TagLine) {
		b.WriteString("*" + speaker.TagLine + "*\n")
	}
	if !isBlank(speaker.Bio) {
		b.WriteString(speaker.Bio + "\n")
	}
	return b.String()
}

// formatSpeakerDetailed renders a speaker with links and session sections
// appended when present.
func formatSpeakerDetailed(speaker *domain.Speaker) string {
	if speaker == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatSpeaker(speaker))
	if len(speaker.Links) > 0 {
		b.WriteString("\n**Links:**\n")
		for _, link := range speaker.Links {
			if link == nil {
				continue
			}
			b.WriteString("- " + safeString(link.Title) + ": " + safeString(link.URL) + "\n")
		}
	}
	if len(speaker.Sessions) > 0 {
		b.WriteString("\n**Sessions:**\n")
		for _, ref := range speaker.Sessions {
			if ref == nil {
				continue
			}
			b.WriteString("- " + safeString(ref.Name) + "\n")
		}
	}
	return b.String()
}

// formatSpeakerSessions renders the session list assigned to one speaker.
func formatSpeakerSessions(speaker *domain.Speaker) string {
	if speaker == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Sessions by " + safeString(speaker.FullName) + "\n\n")
	if len(speaker.Sessions) > 0 {
		for _, ref := range speaker.Sessions {
			if ref == nil {
				continue
			}
			b.WriteString("- " + safeString(ref.Name) + "\n")
		}
	} else {
		b.WriteString("No sessions assigned.\n")
	}
	return b.String()
}

// formatSession renders one session. Time and room lines appear only when
// the data exists; a missing description gets a fixed placeholder.
func formatSession(session *domain.Session) string {
	if session == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("## " + safeString(session.Title) + "\n")
	if session.StartsAt != nil {
		b.WriteString("**Time:** " + *session.StartsAt)
		if session.EndsAt != nil {
			b.WriteString(" - " + *session.EndsAt)
		}
		b.WriteString("\n")
	}
	if !isBlank(session.Room) {
		b.WriteString("**Room:** " + session.Room + "\n")
	}
	if len(session.Speakers) > 0 {
		names := make([]string, 0, len(session.Speakers))
		for _, ref := range session.Speakers {
			if ref == nil {
				continue
			}
			names = append(names, safeString(ref.Name))
		}
		b.WriteString("**Speakers:** " + strings.Join(names, ", ") + "\n")
	}
	b.WriteString("\n")
	if session.Description != nil {
		b.WriteString(*session.Description)
	} else {
		b.WriteString("No description available.")
	}
	return b.String()
}

// formatSchedule renders the grid as markdown: a section per day, a
// subsection per time slot, and a bullet per occupied room. Rooms with no
// session are left out.
func formatSchedule(days []*domain.GridDay) string {
	var b strings.Builder
	b.WriteString("# Event Schedule\n\n")
	for _, day := range days {
		if day == nil {
			continue
		}
		b.WriteString("## " + safeString(day.Date) + "\n\n")
		for _, slot := range day.TimeSlots {
			if slot == nil {
				continue
			}
			b.WriteString("### " + safeString(slot.SlotStart) + "\n")
			for _, room := range slot.Rooms {
				if room == nil || room.Session == nil {
					continue
				}
				b.WriteString("- **" + safeString(room.Name) + "**: " + safeString(room.Session.Title) + "\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
