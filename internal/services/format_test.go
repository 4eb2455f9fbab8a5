package services

import (
	"testing"

	"sessionizemcp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSafeString(t *testing.T) {
	assert.Equal(t, "Jane", safeString("Jane"))
	assert.Equal(t, "Unknown", safeString(""))
	assert.Equal(t, "Unknown", safeString("   "))
}

func TestContainsIgnoreCase(t *testing.T) {
	assert.True(t, containsIgnoreCase("Scaling Go Services", "GO"))
	assert.True(t, containsIgnoreCase("Scaling Go Services", "scaling go"))
	assert.False(t, containsIgnoreCase("Scaling Go Services", "rust"))
	assert.False(t, containsIgnoreCase("", "go"))
}

func TestFormatSpeaker(t *testing.T) {
	tests := []struct {
		name    string
		speaker *domain.Speaker
		want    string
	}{
		{
			name: "full profile",
			speaker: &domain.Speaker{
				FullName: "Jane Smith",
				TagLine:  "Engineer",
				Bio:      "Builds distributed systems.",
			},
			want: "## Jane Smith\n*Engineer*\nBuilds distributed systems.\n",
		},
		{
			name:    "blank fields are omitted and name falls back",
			speaker: &domain.Speaker{FullName: "  ", TagLine: "", Bio: "   "},
			want:    "## Unknown\n",
		},
		{
			name:    "nil speaker renders empty",
			speaker: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSpeaker(tt.speaker))
		})
	}
}

func TestFormatSpeakerDetailed(t *testing.T) {
	speaker := &domain.Speaker{
		FullName: "Jane Smith",
		TagLine:  "Engineer",
		Links: []*domain.Link{
			{Title: "Blog", URL: "https://jane.dev"},
			nil,
			{Title: "", URL: ""},
		},
		Sessions: []*domain.SessionRef{
			{ID: "101", Name: "Scaling Go"},
			nil,
		},
	}

	want := "## Jane Smith\n*Engineer*\n" +
		"\n**Links:**\n- Blog: https://jane.dev\n- Unknown: Unknown\n" +
		"\n**Sessions:**\n- Scaling Go\n"
	assert.Equal(t, want, formatSpeakerDetailed(speaker))

	t.Run("without links or sessions", func(t *testing.T) {
		got := formatSpeakerDetailed(&domain.Speaker{FullName: "Bob"})
		assert.Equal(t, "## Bob\n", got)
	})
}

func TestFormatSpeakerSessions(t *testing.T) {
	t.Run("lists assigned sessions", func(t *testing.T) {
		speaker := &domain.Speaker{
			FullName: "Jane Smith",
			Sessions: []*domain.SessionRef{
				{Name: "Scaling Go"},
				nil,
				{Name: ""},
			},
		}
		want := "## Sessions by Jane Smith\n\n- Scaling Go\n- Unknown\n"
		assert.Equal(t, want, formatSpeakerSessions(speaker))
	})

	t.Run("no sessions assigned", func(t *testing.T) {
		want := "## Sessions by Bob\n\nNo sessions assigned.\n"
		assert.Equal(t, want, formatSpeakerSessions(&domain.Speaker{FullName: "Bob"}))
	})
}

func TestFormatSession(t *testing.T) {
	tests := []struct {
		name    string
		session *domain.Session
		want    string
	}{
		{
			name: "full session",
			session: &domain.Session{
				Title:       "Scaling Go",
				StartsAt:    strPtr("2026-04-01T09:00:00"),
				EndsAt:      strPtr("2026-04-01T10:00:00"),
				Room:        "Main Hall",
				Speakers:    []*domain.SpeakerRef{{Name: "Jane Smith"}, nil, {Name: "Bob Lee"}},
				Description: strPtr("A deep dive into profiling."),
			},
			want: "## Scaling Go\n" +
				"**Time:** 2026-04-01T09:00:00 - 2026-04-01T10:00:00\n" +
				"**Room:** Main Hall\n" +
				"**Speakers:** Jane Smith, Bob Lee\n" +
				"\nA deep dive into profiling.",
		},
		{
			name: "start time without end time",
			session: &domain.Session{
				Title:    "Lightning Talks",
				StartsAt: strPtr("17:00"),
			},
			want: "## Lightning Talks\n**Time:** 17:00\n\nNo description available.",
		},
		{
			name: "end time without start time is not rendered",
			session: &domain.Session{
				Title:  "Orphaned",
				EndsAt: strPtr("18:00"),
			},
			want: "## Orphaned\n\nNo description available.",
		},
		{
			name:    "empty session falls back everywhere",
			session: &domain.Session{},
			want:    "## Unknown\n\nNo description available.",
		},
		{
			name: "empty description is kept as is",
			session: &domain.Session{
				Title:       "Terse",
				Description: strPtr(""),
			},
			want: "## Terse\n\n",
		},
		{
			name:    "nil session renders empty",
			session: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSession(tt.session))
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	days := []*domain.GridDay{
		{
			Date: "2026-04-01T00:00:00",
			TimeSlots: []*domain.TimeSlot{
				{
					SlotStart: "09:00:00",
					Rooms: []*domain.RoomSlot{
						{Name: "Main Hall", Session: &domain.RoomSession{Title: "Opening Keynote"}},
						{Name: "Quiet Room", Session: nil},
						nil,
					},
				},
				nil,
				{
					SlotStart: "",
					Rooms: []*domain.RoomSlot{
						{Name: "", Session: &domain.RoomSession{Title: ""}},
					},
				},
			},
		},
		nil,
		{Date: "", TimeSlots: nil},
	}

	want := "# Event Schedule\n\n" +
		"## 2026-04-01T00:00:00\n\n" +
		"### 09:00:00\n" +
		"- **Main Hall**: Opening Keynote\n" +
		"\n" +
		"### Unknown\n" +
		"- **Unknown**: Unknown\n" +
		"\n" +
		"## Unknown\n\n"
	assert.Equal(t, want, formatSchedule(days))
}

func TestRenderAll(t *testing.T) {
	speakers := []*domain.Speaker{
		{FullName: "A"},
		nil,
		{FullName: "B"},
	}
	got := renderAll(speakers, formatSpeaker)
	assert.Equal(t, "## A\n\n---\n\n---\n## B\n", got)
}
