package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

func TestEncodeDecodeList(t *testing.T) {
	raw, err := EncodeList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	got, err := DecodeList(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	_, err = DecodeList([]byte("{not json"))
	assert.Error(t, err)
}

func TestNotFound(t *testing.T) {
	err := NotFound(fmt.Errorf("scan: %w", sql.ErrNoRows), "entry", "e1")
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Contains(t, err.Error(), "entry e1")

	other := errors.New("disk full")
	assert.Equal(t, other, NotFound(other, "entry", "e1"))
}
