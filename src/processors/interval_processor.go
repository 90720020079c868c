// src/processors/interval_processor.go
package processors

import (
	"time"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// IntervalProcessor detects the sampling cadence of a converted file from
// consecutive timestamp deltas. The corpus contains one file whose cadence
// switches from 15-minute to 5-minute sampling partway through; that file
// is labeled with both regimes and a transition timestamp instead of being
// rejected for inconsistent spacing.
type IntervalProcessor struct{}

func NewIntervalProcessor() *IntervalProcessor { return &IntervalProcessor{} }

// Process computes the interval label for an ordered record sequence.
// Non-positive deltas (duplicate or decreasing timestamps) are ignored
// here; they belong to the timestamp-integrity check, not to cadence
// detection.
func (p *IntervalProcessor) Process(records []models.CanonicalRecord) models.IntervalInfo {
	if len(records) < 2 {
		return models.IntervalInfo{}
	}

	deltas := make([]time.Duration, 0, len(records)-1)
	counts := make(map[time.Duration]int)
	for i := 1; i < len(records); i++ {
		d := records[i].Timestamp.Sub(records[i-1].Timestamp)
		if d <= 0 {
			continue
		}
		deltas = append(deltas, d)
		counts[d]++
	}
	if len(deltas) == 0 {
		return models.IntervalInfo{}
	}

	primary := modalDelta(counts)
	info := models.IntervalInfo{Primary: primary}

	// A regime change is a single clean switch point: one cadence for a
	// prefix of the sequence, a different one for the whole trailing
	// suffix. Anything noisier stays labeled with the modal interval only.
	if len(counts) != 2 {
		return info
	}
	switchAt := -1
	for i := 1; i < len(deltas); i++ {
		if deltas[i] != deltas[i-1] {
			if switchAt >= 0 {
				return info // more than one switch point
			}
			switchAt = i
		}
	}
	if switchAt < 0 {
		return info
	}

	secondary := deltas[0]
	if secondary == primary {
		secondary = deltas[len(deltas)-1]
	}
	info.Secondary = secondary
	// deltas[switchAt] spans records[switchAt] and records[switchAt+1];
	// the new regime starts at the later record.
	info.TransitionAt = records[switchAt+1].Timestamp
	return info
}

func modalDelta(counts map[time.Duration]int) time.Duration {
	var modal time.Duration
	best := -1
	for d, n := range counts {
		if n > best || (n == best && d < modal) {
			modal, best = d, n
		}
	}
	return modal
}
