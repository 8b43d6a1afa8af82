package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, id.IsEmpty())
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParseDatasetID(t *testing.T) {
	id := DatasetID(NewID())

	parsed, err := ParseDatasetID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseDatasetID("   ")
	assert.Error(t, err)
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrDatasetNotFound))
	assert.True(t, IsNotFoundError(NewNotFoundError("dataset", "abc")))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	assert.True(t, IsDataFailure(ErrInsufficientHistory))
	assert.True(t, IsDataFailure(NewMissingColumnsError([]string{"customer", "date"})))
	assert.False(t, IsDataFailure(ErrNotFound))
}

func TestMissingColumnsError_Message(t *testing.T) {
	err := NewMissingColumnsError([]string{"customer", "date"})
	assert.Contains(t, err.Error(), "customer, date")
}
