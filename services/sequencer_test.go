package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerFormat(t *testing.T) {
	l := setupTestLedger(t)
	s := NewSequencer(l)
	now := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)

	no, err := s.Next("venue_a", now)
	require.NoError(t, err)
	assert.Equal(t, "1019-A-001", no)

	no, err = s.Next("venue_a", now)
	require.NoError(t, err)
	assert.Equal(t, "1019-A-002", no)
}

func TestSequencerWithoutVenueCode(t *testing.T) {
	l := setupTestLedger(t)
	s := NewSequencer(l)
	now := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)

	no, err := s.Next("", now)
	require.NoError(t, err)
	assert.Equal(t, "1019-001", no)
}

func TestSequencerPerVenueSequences(t *testing.T) {
	l := setupTestLedger(t)
	s := NewSequencer(l)
	now := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)

	a, err := s.Next("venue_a", now)
	require.NoError(t, err)
	b, err := s.Next("venue_b", now)
	require.NoError(t, err)

	assert.Equal(t, "1019-A-001", a)
	assert.Equal(t, "1019-B-001", b)
}

func TestSequencerRollsOverAtMidnight(t *testing.T) {
	l := setupTestLedger(t)
	s := NewSequencer(l)

	no, err := s.Next("venue_a", time.Date(2025, 10, 19, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "1019-A-001", no)

	no, err = s.Next("venue_a", time.Date(2025, 10, 20, 0, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "1020-A-001", no)
}
