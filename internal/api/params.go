package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

const dateOnly = "2006-01-02"

// parseInstant accepts RFC3339 or YYYY-MM-DD. A bare date used as an upper
// bound covers the whole day.
func parseInstant(field, v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, v)
	if err != nil {
		return nil, model.NewValidationError(field, "must be RFC3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseRange(r *http.Request) (start, end *time.Time, err error) {
	q := r.URL.Query()
	if start, err = parseInstant("startDate", q.Get("startDate"), false); err != nil {
		return nil, nil, err
	}
	if end, err = parseInstant("endDate", q.Get("endDate"), true); err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, model.NewValidationError("endDate", "must not be before startDate")
	}
	return start, end, nil
}

func parseList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLimit(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 1000 {
		return 0, model.NewValidationError("limit", "must be an integer between 0 and 1000")
	}
	return n, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return model.NewValidationError("body", fmt.Sprintf("invalid json: %v", err))
	}
	return nil
}
