package model

import "time"

// User represents an account in the system.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"displayName,omitempty"`
	TimeZone     string    `json:"timeZone"`
	PasswordHash string    `json:"-"`
	CreationTime time.Time `json:"creationTime"`
}

// Location resolves the user's IANA time zone, falling back to UTC when the
// zone is empty or unknown.
func (u *User) Location() *time.Location {
	if u == nil || u.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// JournalEntry is a single journal record authored by a user.
type JournalEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Mood         string    `json:"mood,omitempty"`
	Emotion      string    `json:"emotion,omitempty"`
	Tags         []string  `json:"tags"`
	IsFavorite   bool      `json:"isFavorite"`
	Date         time.Time `json:"date"`
	LastModified time.Time `json:"lastModified"`
}

// MoodLabel returns the label used for mood statistics: the legacy mood field
// when set, otherwise the newer emotion field.
func (e JournalEntry) MoodLabel() string {
	if e.Mood != "" {
		return e.Mood
	}
	return e.Emotion
}

// Clone returns a copy that shares no slices with e.
func (e JournalEntry) Clone() JournalEntry {
	out := e
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	return out
}

// MoodEntry is a single mood check-in.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Emotions  []string  `json:"emotions"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ListEntriesRequest captures filters used when listing journal entries.
type ListEntriesRequest struct {
	UserID   string
	Start    *time.Time
	End      *time.Time
	Emotions []string
	Limit    int
}

// EntryPatch carries the fields of a partial journal entry update. Nil fields
// are left untouched.
type EntryPatch struct {
	Title   *string    `json:"title,omitempty"`
	Content *string    `json:"content,omitempty"`
	Mood    *string    `json:"mood,omitempty"`
	Emotion *string    `json:"emotion,omitempty"`
	Tags    *[]string  `json:"tags,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

// Apply returns e with the non-nil patch fields written over it.
func (p EntryPatch) Apply(e JournalEntry) JournalEntry {
	out := e.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.Mood != nil {
		out.Mood = *p.Mood
	}
	if p.Emotion != nil {
		out.Emotion = *p.Emotion
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	return out
}

// ListMoodsRequest captures filters used when listing mood entries.
type ListMoodsRequest struct {
	UserID string
	Start  *time.Time
	End    *time.Time
}
