// Package validate checks request payloads before they reach the store.
// Every failure is a model.ValidationError naming the offending field.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

const (
	MaxTitleLen       = 200
	MaxContentLen     = 20000
	MaxLabelLen       = 50
	MaxTags           = 20
	MaxNoteLen        = 2000
	MaxDisplayNameLen = 100
	MinPasswordLen    = 8
	MinRating         = 1
	MaxRating         = 10
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func fail(field, msg string) error { return model.NewValidationError(field, msg) }

func Email(v string) error {
	if v == "" {
		return fail("email", "is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fail("email", "is invalid")
	}
	return nil
}

func Password(v string) error {
	if utf8.RuneCountInString(v) < MinPasswordLen {
		return fail("password", "must be at least 8 characters")
	}
	return nil
}

// TimeZone accepts empty (UTC) or any IANA zone name known to the runtime.
func TimeZone(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.LoadLocation(v); err != nil {
		return fail("timeZone", "is not a known IANA zone")
	}
	return nil
}

func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if utf8.RuneCountInString(*v) > limit {
		return fail(field, "exceeds maximum length")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fail(field, "is required")
	}
	return nil
}

func Tags(tags []string) error {
	if len(tags) > MaxTags {
		return fail("tags", "too many tags")
	}
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return fail("tags", "must not contain empty tags")
		}
		if err := MaxLen("tags", &t, MaxLabelLen); err != nil {
			return err
		}
	}
	return nil
}

func Rating(v int) error {
	if v < MinRating || v > MaxRating {
		return fail("rating", "must be between 1 and 10")
	}
	return nil
}

// -------- Request specific helpers ----------

// RegisterUser validates a sign-up request.
func RegisterUser(email, password string, displayName *string, timeZone string) error {
	if err := Email(email); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	if err := MaxLen("displayName", displayName, MaxDisplayNameLen); err != nil {
		return err
	}
	return TimeZone(timeZone)
}

// CreateEntry validates a new journal entry.
func CreateEntry(e model.JournalEntry) error {
	if err := MaxLen("title", &e.Title, MaxTitleLen); err != nil {
		return err
	}
	if err := NonEmpty("content", e.Content); err != nil {
		return err
	}
	if err := MaxLen("content", &e.Content, MaxContentLen); err != nil {
		return err
	}
	if err := MaxLen("mood", &e.Mood, MaxLabelLen); err != nil {
		return err
	}
	if err := MaxLen("emotion", &e.Emotion, MaxLabelLen); err != nil {
		return err
	}
	return Tags(e.Tags)
}

// UpdateEntry validates a partial update; only present fields are checked.
func UpdateEntry(p model.EntryPatch) error {
	if err := MaxLen("title", p.Title, MaxTitleLen); err != nil {
		return err
	}
	if p.Content != nil {
		if err := NonEmpty("content", *p.Content); err != nil {
			return err
		}
	}
	if err := MaxLen("content", p.Content, MaxContentLen); err != nil {
		return err
	}
	if err := MaxLen("mood", p.Mood, MaxLabelLen); err != nil {
		return err
	}
	if err := MaxLen("emotion", p.Emotion, MaxLabelLen); err != nil {
		return err
	}
	if p.Tags != nil {
		return Tags(*p.Tags)
	}
	return nil
}

// MoodEntry validates a mood check-in.
func MoodEntry(m model.MoodEntry) error {
	if err := Rating(m.Rating); err != nil {
		return err
	}
	if len(m.Emotions) > MaxTags {
		return fail("emotions", "too many emotions")
	}
	for _, e := range m.Emotions {
		if err := MaxLen("emotions", &e, MaxLabelLen); err != nil {
			return err
		}
	}
	return MaxLen("note", &m.Note, MaxNoteLen)
}
