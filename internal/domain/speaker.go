package domain

// Speaker is a speaker profile from the Sessionize Speakers view.
// Sessionize may serve null fields and null sequence entries; nulls decode
// as zero values and nil pointers and are skipped when rendering.
type Speaker struct {
	ID             string        `json:"id"`
	FullName       string        `json:"fullName"`
	Bio            string        `json:"bio"`
	TagLine        string        `json:"tagLine"`
	ProfilePicture string        `json:"profilePicture"`
	Sessions       []*SessionRef `json:"sessions"`
	Links          []*Link       `json:"links"`
}

// SessionRef is the session stub embedded in a speaker profile.
type SessionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Link is a social or web link on a speaker profile.
type Link struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	LinkType string `json:"linkType"`
}
