// src/models/canonical.go
package models

import "time"

// FieldKind classifies a canonical measurement column. The set is closed:
// every raw header the parser cannot recognize maps to KindUnknown rather
// than growing the enum.
type FieldKind string

const (
	KindTimestamp        FieldKind = "TIMESTAMP"
	KindIrradiance       FieldKind = "IRRADIANCE"
	KindAmbientTemp      FieldKind = "AMBIENT_TEMP"
	KindModuleTemp       FieldKind = "MODULE_TEMP"
	KindInverterTemp     FieldKind = "INVERTER_TEMP"
	KindDcCurrent        FieldKind = "DC_CURRENT"
	KindDcVoltage        FieldKind = "DC_VOLTAGE"
	KindAcCurrent        FieldKind = "AC_CURRENT"
	KindAcVoltage        FieldKind = "AC_VOLTAGE"
	KindAcPower          FieldKind = "AC_POWER"
	KindCumulativeEnergy FieldKind = "CUMULATIVE_ENERGY"
	KindUnknown          FieldKind = "UNKNOWN"
)

// CanonicalField is the normalized identity of one measurement column,
// independent of the raw header text it was derived from.
type CanonicalField struct {
	// Name is the stable column name on the staging boundary, e.g. "p_ac_3".
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
	// DeviceInstance identifies the inverter/sensor for per-device fields.
	// Zero means plant-wide (instances in the raw data are 1-based).
	DeviceInstance int    `json:"device_instance,omitempty"`
	Unit           string `json:"unit,omitempty"`
	// RawHeader is the original header token, kept for findings and audit.
	RawHeader string `json:"raw_header,omitempty"`
}

// PerDevice reports whether the field is bound to a specific inverter/sensor.
func (f CanonicalField) PerDevice() bool { return f.DeviceInstance > 0 }

// CanonicalRecord is one timestamped observation. Values are keyed by
// canonical field name; a nil entry is a missing measurement. The timestamp
// is the record's identity: records with unparsable timestamps are dropped
// during conversion, never kept with a zero key.
type CanonicalRecord struct {
	Timestamp time.Time
	Values    map[string]*float64
}

// Value returns the measurement for a canonical field name, nil when missing.
func (r CanonicalRecord) Value(name string) *float64 { return r.Values[name] }
