package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

func recordsAt(start time.Time, step time.Duration, n int) []models.CanonicalRecord {
	out := make([]models.CanonicalRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.CanonicalRecord{Timestamp: start.Add(time.Duration(i) * step)})
	}
	return out
}

func TestProcessSingleRegime(t *testing.T) {
	start := time.Date(2013, 2, 1, 0, 0, 0, 0, time.UTC)
	info := NewIntervalProcessor().Process(recordsAt(start, 15*time.Minute, 96))

	assert.Equal(t, 15*time.Minute, info.Primary)
	assert.False(t, info.RegimeChange())
}

func TestProcessRegimeChange(t *testing.T) {
	// The corpus's known mid-file cadence switch: 15-minute sampling for a
	// prefix, 5-minute sampling for the whole trailing suffix.
	start := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	records := recordsAt(start, 15*time.Minute, 20)
	last := records[len(records)-1].Timestamp
	for i := 1; i <= 40; i++ {
		records = append(records, models.CanonicalRecord{Timestamp: last.Add(time.Duration(i) * 5 * time.Minute)})
	}

	info := NewIntervalProcessor().Process(records)

	require.True(t, info.RegimeChange())
	// The finer cadence dominates, so it is the modal (primary) interval.
	assert.Equal(t, 5*time.Minute, info.Primary)
	assert.Equal(t, 15*time.Minute, info.Secondary)
	assert.Equal(t, last.Add(5*time.Minute), info.TransitionAt)
}

func TestProcessRegimeChangeCoarseMajority(t *testing.T) {
	start := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	records := recordsAt(start, 15*time.Minute, 50)
	last := records[len(records)-1].Timestamp
	for i := 1; i <= 10; i++ {
		records = append(records, models.CanonicalRecord{Timestamp: last.Add(time.Duration(i) * 5 * time.Minute)})
	}

	info := NewIntervalProcessor().Process(records)

	require.True(t, info.RegimeChange())
	assert.Equal(t, 15*time.Minute, info.Primary)
	assert.Equal(t, 5*time.Minute, info.Secondary)
}

func TestProcessNoisySpacingIsNotARegimeChange(t *testing.T) {
	start := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	records := recordsAt(start, 15*time.Minute, 10)
	// A lone gap (data outage) and back: two switch points.
	records = append(records, recordsAt(start.Add(10*time.Hour), 15*time.Minute, 10)...)

	info := NewIntervalProcessor().Process(records)

	assert.Equal(t, 15*time.Minute, info.Primary)
	assert.False(t, info.RegimeChange())
}

func TestProcessIgnoresNonPositiveDeltas(t *testing.T) {
	start := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	records := recordsAt(start, 15*time.Minute, 10)
	// Duplicate timestamp in the middle: an integrity problem, not cadence.
	records = append(records[:5], append([]models.CanonicalRecord{{Timestamp: records[4].Timestamp}}, records[5:]...)...)

	info := NewIntervalProcessor().Process(records)

	assert.Equal(t, 15*time.Minute, info.Primary)
	assert.False(t, info.RegimeChange())
}

func TestProcessTooFewRecords(t *testing.T) {
	info := NewIntervalProcessor().Process(nil)
	assert.Equal(t, time.Duration(0), info.Primary)

	info = NewIntervalProcessor().Process(recordsAt(time.Now(), time.Minute, 1))
	assert.Equal(t, time.Duration(0), info.Primary)
}
