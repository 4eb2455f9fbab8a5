package domain

// SessionGroup is one group from the Sessionize Sessions view. Sessionize
// groups sessions by track or by day depending on event configuration.
type SessionGroup struct {
	GroupName string     `json:"groupName"`
	Sessions  []*Session `json:"sessions"`
}

// Session is a conference session or talk.
// Description, StartsAt, and EndsAt are pointers because their absence
// renders differently from an empty string.
type Session struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	StartsAt    *string       `json:"startsAt"`
	EndsAt      *string       `json:"endsAt"`
	Room        string        `json:"room"`
	Speakers    []*SpeakerRef `json:"speakers"`
	Categories  []*Category   `json:"categories"`
}

// SpeakerRef is the speaker stub embedded in a session.
type SpeakerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a category group attached to a session.
type Category struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	CategoryItems []*CategoryItem `json:"categoryItems"`
}

// CategoryItem is a single category value.
type CategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
