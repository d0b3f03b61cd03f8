package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

// EncodeList serialises a string slice for a TEXT/JSONB column. nil encodes
// as an empty array.
func EncodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a column written by EncodeList. Empty input yields an
// empty slice.
func DecodeList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

// NotFound maps sql.ErrNoRows to model.ErrNotFound and passes other errors
// through.
func NotFound(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, model.ErrNotFound)
	}
	return err
}
