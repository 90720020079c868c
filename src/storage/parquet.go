// src/storage/parquet.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/parsers/meteocontrol"
)

// TimestampColumn is the identity column of every staged record set.
const TimestampColumn = "timestamp"

// StagingPath returns the partitioned location of one converted file:
// <dir>/year=YYYY/month=MM/solar_data_YYYY_MM.parquet.
func StagingPath(stagingDir string, file models.SourceFile) string {
	return filepath.Join(
		stagingDir,
		fmt.Sprintf("year=%04d", file.Year),
		fmt.Sprintf("month=%02d", file.Month),
		fmt.Sprintf("solar_data_%04d_%02d.parquet", file.Year, file.Month),
	)
}

// jsonSchemaNode mirrors the parquet-go JSON schema shape.
type jsonSchemaNode struct {
	Tag    string           `json:"Tag"`
	Fields []jsonSchemaNode `json:"Fields,omitempty"`
}

// schemaJSON builds the dynamic parquet schema for a canonical field list:
// a required millisecond timestamp plus one optional DOUBLE per field. The
// column set is data-driven (per-device suffixed names), so the schema is
// assembled at runtime instead of living on a struct.
func schemaJSON(fields []models.CanonicalField) (string, error) {
	root := jsonSchemaNode{Tag: "name=solar_record, repetitiontype=REQUIRED"}
	root.Fields = append(root.Fields, jsonSchemaNode{
		Tag: fmt.Sprintf("name=%s, type=INT64, convertedtype=TIMESTAMP_MILLIS, repetitiontype=REQUIRED", TimestampColumn),
	})
	for _, f := range fields {
		root.Fields = append(root.Fields, jsonSchemaNode{
			Tag: fmt.Sprintf("name=%s, type=DOUBLE, repetitiontype=OPTIONAL", f.Name),
		})
	}
	raw, err := json.Marshal(root)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// WriteRecordSet stages one conversion result as a parquet file and returns
// its path.
func WriteRecordSet(stagingDir string, res *models.ConversionResult) (string, error) {
	path := StagingPath(stagingDir, res.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating partition dir: %w", err)
	}

	schema, err := schemaJSON(res.Fields)
	if err != nil {
		return "", fmt.Errorf("building parquet schema: %w", err)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	pw, err := writer.NewJSONWriter(schema, fw, 2)
	if err != nil {
		fw.Close()
		return "", fmt.Errorf("creating parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, rec := range res.Records {
		row := make(map[string]interface{}, len(rec.Values)+1)
		row[TimestampColumn] = rec.Timestamp.UnixMilli()
		for name, v := range rec.Values {
			if v != nil {
				row[name] = *v
			}
		}
		encoded, err := json.Marshal(row)
		if err != nil {
			fw.Close()
			return "", err
		}
		if err := pw.Write(string(encoded)); err != nil {
			fw.Close()
			return "", fmt.Errorf("writing record: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", fmt.Errorf("finalizing parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// ReadRecordSet loads a staged parquet file back into a canonical record
// set. Field identities are reconstructed from the column names, which is
// the round-trip contract of the staging boundary.
func ReadRecordSet(path string) (*models.ConversionResult, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("reading parquet footer: %w", err)
	}
	defer pr.ReadStop()

	// Leaf columns in schema order; index 0 is the schema root.
	var inNames, exNames []string
	for _, info := range pr.SchemaHandler.Infos[1:] {
		inNames = append(inNames, info.InName)
		exNames = append(exNames, info.ExName)
	}

	res := &models.ConversionResult{StagingPath: path}
	for _, ex := range exNames {
		if ex == TimestampColumn {
			continue
		}
		res.Fields = append(res.Fields, meteocontrol.ParseCanonicalName(ex))
	}

	rows, err := pr.ReadByNumber(int(pr.GetNumRows()))
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	for _, raw := range rows {
		rv := reflect.ValueOf(raw)
		rec := models.CanonicalRecord{Values: make(map[string]*float64, len(exNames)-1)}
		for i, in := range inNames {
			fv := rv.FieldByName(in)
			if !fv.IsValid() {
				continue
			}
			if exNames[i] == TimestampColumn {
				rec.Timestamp = millisToTime(fv.Int())
				continue
			}
			if fv.Kind() == reflect.Ptr && !fv.IsNil() {
				v := fv.Elem().Float()
				rec.Values[exNames[i]] = &v
			} else {
				rec.Values[exNames[i]] = nil
			}
		}
		res.Records = append(res.Records, rec)
	}
	res.RawColumns = len(exNames)
	return res, nil
}

// PeriodFromPath recovers the declared (year, month) of a staged file from
// its partition path.
func PeriodFromPath(path string) (int, int, bool) {
	year, month := 0, 0
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if v, ok := strings.CutPrefix(part, "year="); ok {
			if n, err := strconv.Atoi(v); err == nil {
				year = n
			}
		}
		if v, ok := strings.CutPrefix(part, "month="); ok {
			if n, err := strconv.Atoi(v); err == nil {
				month = n
			}
		}
	}
	return year, month, year > 0 && month >= 1 && month <= 12
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ListStagedFiles walks a staging directory and returns the parquet paths
// in lexical (period) order.
func ListStagedFiles(stagingDir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(stagingDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".parquet" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
