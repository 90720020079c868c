package validators

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// referenceFields is a reduced vocabulary standing in for the real
// 107-column schema.
func referenceFields() []models.CanonicalField {
	return []models.CanonicalField{
		{Name: "g_h", Kind: models.KindIrradiance},
		{Name: "t_u", Kind: models.KindAmbientTemp},
		{Name: "p_ac_1", Kind: models.KindAcPower, DeviceInstance: 1},
		{Name: "u_ac_1", Kind: models.KindAcVoltage, DeviceInstance: 1},
		{Name: "f_ac", Kind: models.KindUnknown},
	}
}

func monthResult(year, month, rows int, fields []models.CanonicalField) *models.ConversionResult {
	res := &models.ConversionResult{
		File: models.SourceFile{
			Name:  fmt.Sprintf("%04d %02d Mes Todos los Inversores.csv", year, month),
			Year:  year,
			Month: month,
		},
		Fields: fields,
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		res.Records = append(res.Records, models.CanonicalRecord{
			Timestamp: start.Add(time.Duration(i) * 15 * time.Minute),
			Values:    map[string]*float64{},
		})
	}
	return res
}

// corpus fabricates n monthly results with the reference schema.
func corpus(n int) []*models.ConversionResult {
	var out []*models.ConversionResult
	year, month := 2013, 2
	for i := 0; i < n; i++ {
		out = append(out, monthResult(year, month, 96, referenceFields()))
		month++
		if month > 12 {
			month, year = 1, year+1
		}
	}
	return out
}

func newTestValidator(expectedFiles int) *Validator {
	// Expected columns = reference fields + timestamp.
	return NewValidator(expectedFiles, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023)
}

func TestCleanCorpusPasses(t *testing.T) {
	results := corpus(131)
	findings := newTestValidator(131).Validate(results)

	assert.Empty(t, findings)
	assert.Equal(t, models.VerdictPassed, VerdictFor(findings))
}

func TestFileCountMismatchBlocks(t *testing.T) {
	results := corpus(130)
	findings := newTestValidator(131).Validate(results)

	require.Len(t, findings, 1)
	assert.Equal(t, models.SeverityCritical, findings[0].Severity)
	assert.Equal(t, models.CheckFileCount, findings[0].Check)
	assert.Equal(t, models.ScopeCorpus, findings[0].Scope)
	assert.Equal(t, models.VerdictBlocked, VerdictFor(findings))
}

func TestEmptyFileBlocksWithSingleFinding(t *testing.T) {
	results := corpus(131)
	results[40].Records = nil

	findings := newTestValidator(131).Validate(results)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, models.SeverityCritical, f.Severity)
	assert.Equal(t, models.CheckEmptyFile, f.Check)
	assert.Equal(t, results[40].File.Name, f.Scope)
	assert.Equal(t, models.VerdictBlocked, VerdictFor(findings))
}

func TestSchemaDeviationBlocksAndNamesMissingField(t *testing.T) {
	results := corpus(10)
	// One file lost a column relative to the reference vocabulary.
	short := referenceFields()
	results[3].Fields = short[:len(short)-1] // drops f_ac

	findings := NewValidator(10, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, models.SeverityCritical, f.Severity)
	assert.Equal(t, models.CheckSchemaConsistency, f.Check)
	assert.Equal(t, results[3].File.Name, f.Scope)
	assert.Contains(t, f.Detail, "expected 6 columns, found 5")
	assert.Contains(t, f.Detail, "missing fields: f_ac")
	assert.Equal(t, models.VerdictBlocked, VerdictFor(findings))
}

func TestSchemaExtraFieldIsNamed(t *testing.T) {
	results := corpus(10)
	results[7].Fields = append(referenceFields(), models.CanonicalField{Name: "p_ac_9", Kind: models.KindAcPower, DeviceInstance: 9})

	findings := NewValidator(10, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Detail, "extra fields: p_ac_9")
}

func TestBoundsViolationWarnsWithoutBlocking(t *testing.T) {
	results := corpus(3)
	// One AC power reading above the 5880 W envelope.
	v := 6000.0
	results[1].Records[10].Values["p_ac_1"] = &v

	findings := NewValidator(3, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, models.SeverityWarning, f.Severity)
	assert.Equal(t, models.CheckPhysicalBounds, f.Check)
	assert.Equal(t, results[1].File.Name+"|p_ac_1", f.Scope)
	assert.Contains(t, f.Detail, "AC Power")
	assert.Contains(t, f.Detail, "1 above 5880W")
	assert.Contains(t, f.Detail, "6000")
	assert.Equal(t, models.VerdictPassedWithWarnings, VerdictFor(findings))
}

func TestBoundsBelowMinimumCounts(t *testing.T) {
	results := corpus(1)
	cold := -40.0
	fine := 12.5
	results[0].Records[0].Values["t_u"] = &cold
	results[0].Records[1].Values["t_u"] = &fine

	findings := NewValidator(1, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Detail, "1 below -17.4°C")
}

func TestUnknownFieldsAreExcludedFromBounds(t *testing.T) {
	results := corpus(1)
	// f_ac is a documented non-diagnostic column; absurd values there must
	// not produce bounds findings.
	v := 1e9
	results[0].Records[0].Values["f_ac"] = &v

	findings := NewValidator(1, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)
	assert.Empty(t, findings)
}

func TestDuplicateTimestampWarns(t *testing.T) {
	results := corpus(2)
	recs := results[0].Records
	recs[5].Timestamp = recs[4].Timestamp

	findings := NewValidator(2, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, models.SeverityWarning, f.Severity)
	assert.Equal(t, models.CheckTimestampIntegrity, f.Check)
	assert.Contains(t, f.Detail, "1 duplicate")
	assert.Equal(t, models.VerdictPassedWithWarnings, VerdictFor(findings))
}

func TestRegimeChangeProducesNoTimestampFinding(t *testing.T) {
	results := corpus(2)
	// Rebuild one file with a 15-minute prefix and a 5-minute suffix:
	// strictly increasing throughout, so not an integrity anomaly.
	res := results[0]
	start := time.Date(res.File.Year, time.Month(res.File.Month), 1, 0, 0, 0, 0, time.UTC)
	res.Records = nil
	cur := start
	for i := 0; i < 40; i++ {
		res.Records = append(res.Records, models.CanonicalRecord{Timestamp: cur, Values: map[string]*float64{}})
		cur = cur.Add(15 * time.Minute)
	}
	for i := 0; i < 56; i++ {
		res.Records = append(res.Records, models.CanonicalRecord{Timestamp: cur, Values: map[string]*float64{}})
		cur = cur.Add(5 * time.Minute)
	}

	findings := NewValidator(2, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)
	assert.Empty(t, findings)
}

func TestDroppedTimestampRecordsWarn(t *testing.T) {
	results := corpus(1)
	results[0].DroppedRecords = 3
	results[0].DroppedSamples = []string{`line 17: unparsable timestamp "31.13.2013" "00:00:00"`}

	findings := NewValidator(1, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	assert.Equal(t, models.CheckTimestampIntegrity, findings[0].Check)
	assert.Contains(t, findings[0].Detail, "3 records dropped")
	assert.Contains(t, findings[0].Detail, "31.13.2013")
}

func TestNextMonthRowsWithinToleranceDoNotWarn(t *testing.T) {
	results := corpus(1)
	res := results[0]
	// The exporter appends up to two rows from the start of the next month.
	last := res.Records[len(res.Records)-1].Timestamp
	next := time.Date(res.File.Year, time.Month(res.File.Month)+1, 1, 0, 0, 0, 0, time.UTC)
	_ = last
	res.Records = append(res.Records,
		models.CanonicalRecord{Timestamp: next, Values: map[string]*float64{}},
		models.CanonicalRecord{Timestamp: next.Add(15 * time.Minute), Values: map[string]*float64{}},
	)

	findings := NewValidator(1, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)
	assert.Empty(t, findings)
}

func TestPeriodDriftBeyondToleranceWarns(t *testing.T) {
	results := corpus(1)
	res := results[0]
	wrong := time.Date(res.File.Year, time.Month(res.File.Month)+1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		res.Records = append(res.Records, models.CanonicalRecord{
			Timestamp: wrong.Add(time.Duration(i) * 15 * time.Minute),
			Values:    map[string]*float64{},
		})
	}

	findings := NewValidator(1, len(referenceFields())+1, models.DefaultBounds(), 2013, 2023).Validate(results)

	require.Len(t, findings, 1)
	assert.Equal(t, models.CheckTimestampIntegrity, findings[0].Check)
	assert.Contains(t, findings[0].Detail, "wrong month")
}

func TestVerdictPrecedence(t *testing.T) {
	critical := models.Finding{Severity: models.SeverityCritical, Check: models.CheckEmptyFile}
	warning := models.Finding{Severity: models.SeverityWarning, Check: models.CheckPhysicalBounds}

	assert.Equal(t, models.VerdictPassed, VerdictFor(nil))
	assert.Equal(t, models.VerdictPassedWithWarnings, VerdictFor([]models.Finding{warning}))
	assert.Equal(t, models.VerdictBlocked, VerdictFor([]models.Finding{warning, critical}))
}
