package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

func field(t *testing.T, err error) string {
	t.Helper()
	var ve model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("ValidationError must match ErrValidation")
	}
	return ve.Field
}

func TestRegisterUser(t *testing.T) {
	if err := RegisterUser("a@b.co", "longenough", nil, "Europe/Paris"); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	cases := map[string]struct {
		email, password, tz string
		want                string
	}{
		"bad email":  {"nope", "longenough", "", "email"},
		"short pass": {"a@b.co", "short", "", "password"},
		"bad zone":   {"a@b.co", "longenough", "Mars/Olympus", "timeZone"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := field(t, RegisterUser(tc.email, tc.password, nil, tc.tz)); got != tc.want {
				t.Fatalf("field = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCreateEntry(t *testing.T) {
	ok := model.JournalEntry{Title: "t", Content: "c", Mood: "happy", Tags: []string{"x"}}
	if err := CreateEntry(ok); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	long := ok
	long.Title = strings.Repeat("a", MaxTitleLen+1)
	if got := field(t, CreateEntry(long)); got != "title" {
		t.Fatalf("field = %s", got)
	}

	empty := ok
	empty.Content = "   "
	if got := field(t, CreateEntry(empty)); got != "content" {
		t.Fatalf("field = %s", got)
	}

	tags := ok
	tags.Tags = make([]string, MaxTags+1)
	for i := range tags.Tags {
		tags.Tags[i] = "t"
	}
	if got := field(t, CreateEntry(tags)); got != "tags" {
		t.Fatalf("field = %s", got)
	}
}

func TestUpdateEntry_OnlyPresentFields(t *testing.T) {
	if err := UpdateEntry(model.EntryPatch{}); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}
	blank := ""
	if got := field(t, UpdateEntry(model.EntryPatch{Content: &blank})); got != "content" {
		t.Fatalf("field = %s", got)
	}
}

func TestMoodEntry(t *testing.T) {
	if err := MoodEntry(model.MoodEntry{Rating: 10}); err != nil {
		t.Fatalf("valid mood rejected: %v", err)
	}
	for _, r := range []int{0, 11} {
		if got := field(t, MoodEntry(model.MoodEntry{Rating: r})); got != "rating" {
			t.Fatalf("rating %d: field = %s", r, got)
		}
	}
}
