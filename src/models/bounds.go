// src/models/bounds.go
package models

// PhysicalBound is the plausibility envelope for one measurement kind.
// Bounds are envelope bounds: the widest range across all 13 systems,
// sourced from ISO reference values plus AEMET historical data for Madrid.
type PhysicalBound struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Unit string  `yaml:"unit" json:"unit"`
	Desc string  `yaml:"desc" json:"desc"`
}

// BoundsTable maps a field kind to its envelope. Kinds without an entry
// (DC/AC current, cumulative energy, unknown columns) are not bounds-checked.
type BoundsTable map[FieldKind]PhysicalBound

// DefaultBounds returns the reference envelope table. Shared and read-only;
// a run may override it with a table loaded from configuration.
func DefaultBounds() BoundsTable {
	return BoundsTable{
		KindIrradiance:   {Min: 0, Max: 1500, Unit: "W/m²", Desc: "Irradiance"},
		KindAmbientTemp:  {Min: -17.4, Max: 50, Unit: "°C", Desc: "Ambient Temperature"},
		KindModuleTemp:   {Min: -17.4, Max: 70, Unit: "°C", Desc: "Module Temperature"},
		KindInverterTemp: {Min: -17.4, Max: 80, Unit: "°C", Desc: "Inverter Temperature"},
		KindAcPower:      {Min: 0, Max: 5880, Unit: "W", Desc: "AC Power"},
		KindDcVoltage:    {Min: 0, Max: 548.5, Unit: "V", Desc: "DC Voltage"},
		KindAcVoltage:    {Min: 0, Max: 280, Unit: "V", Desc: "AC Voltage"},
	}
}
