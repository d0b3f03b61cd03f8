package client

import "time"

// User is the public projection of an account.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"displayName,omitempty"`
	TimeZone     string    `json:"timeZone"`
	CreationTime time.Time `json:"creationTime"`
}

// RegisterRequest is the body of Register.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"displayName,omitempty"`
	TimeZone    string  `json:"timeZone,omitempty"`
}

// LoginResult carries the issued bearer token. The client does not store it;
// call SetToken to use it.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Entry is a journal entry as returned by the service. Dates are kept as
// strings so that a malformed value never fails a whole listing.
type Entry struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Mood         string   `json:"mood,omitempty"`
	Emotion      string   `json:"emotion,omitempty"`
	Tags         []string `json:"tags"`
	IsFavorite   bool     `json:"isFavorite"`
	Date         string   `json:"date,omitempty"`
	Timestamp    string   `json:"timestamp,omitempty"`
	LastModified string   `json:"lastModified,omitempty"`
}

// When returns the authoring instant from date, falling back to timestamp.
// Unparseable or missing values yield the zero time.
func (e Entry) When() time.Time {
	if t := parseTime(e.Date); !t.IsZero() {
		return t
	}
	return parseTime(e.Timestamp)
}

// Modified returns LastModified parsed, zero when absent or malformed.
func (e Entry) Modified() time.Time { return parseTime(e.LastModified) }

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CreateEntryRequest is the body of CreateEntry. A nil Date lets the server
// stamp the entry with the current time.
type CreateEntryRequest struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Mood    string     `json:"mood,omitempty"`
	Emotion string     `json:"emotion,omitempty"`
	Tags    []string   `json:"tags,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

// UpdateEntryRequest is a partial update; nil fields are left untouched.
type UpdateEntryRequest struct {
	Title   *string    `json:"title,omitempty"`
	Content *string    `json:"content,omitempty"`
	Mood    *string    `json:"mood,omitempty"`
	Emotion *string    `json:"emotion,omitempty"`
	Tags    *[]string  `json:"tags,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

// EntryFilter narrows ListEntries.
type EntryFilter struct {
	Start    *time.Time
	End      *time.Time
	Emotions []string
	Limit    int
}

// Stats is the journal statistics as computed by the service.
type Stats struct {
	Total  int            `json:"total"`
	ByMood map[string]int `json:"byMood"`
	Streak int            `json:"streak"`
}

// MoodEntry is one mood check-in.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Emotions  []string  `json:"emotions"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LogMoodRequest is the body of LogMood.
type LogMoodRequest struct {
	Rating    int        `json:"rating"`
	Emotions  []string   `json:"emotions,omitempty"`
	Note      string     `json:"note,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

type DailyMood struct {
	Day         string  `json:"day"`
	AverageMood float64 `json:"averageMood"`
	Count       int     `json:"count"`
}

// MoodStats summarises recent mood check-ins.
type MoodStats struct {
	WeeklyAverage  float64        `json:"weeklyAverage"`
	MonthlyAverage float64        `json:"monthlyAverage"`
	TopEmotions    []EmotionCount `json:"topEmotions"`
	Improvement    float64        `json:"improvement"`
	Count          int            `json:"count"`
	Daily          []DailyMood    `json:"daily"`
}

// Health is the service health report.
type Health struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

// Healthy reports whether the service declared itself UP.
func (h Health) Healthy() bool { return h.Status == "UP" }
