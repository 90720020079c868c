// src/parsers/meteocontrol/header.go
package meteocontrol

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// deviceHeaderRe matches per-device header tokens like "P_AC(3)" or
// "P_AC(3(12345))". Only the first parenthetical integer is the device
// instance; the nested serial token is ignored.
var deviceHeaderRe = regexp.MustCompile(`^([A-Za-z_]+)\((\d+)(?:\((\d+)\))?\)$`)

// kindByPrefix is the closed header grammar of the format family.
var kindByPrefix = map[string]models.FieldKind{
	"G_H":   models.KindIrradiance,
	"G_M":   models.KindIrradiance,
	"T_U":   models.KindAmbientTemp,
	"T_M":   models.KindModuleTemp,
	"T_WR":  models.KindInverterTemp,
	"I_DC":  models.KindDcCurrent,
	"U_DC":  models.KindDcVoltage,
	"I_AC":  models.KindAcCurrent,
	"U_AC":  models.KindAcVoltage,
	"P_AC":  models.KindAcPower,
	"E_INT": models.KindCumulativeEnergy,
}

// FieldFromHeader derives the canonical field for one raw header token.
// Unrecognized prefixes map to KindUnknown and are preserved in the output;
// the two documented non-diagnostic columns (F_AC, AVAIL) land here too.
func FieldFromHeader(token, unit string) models.CanonicalField {
	token = strings.TrimSpace(token)
	prefix := token
	instance := 0

	if m := deviceHeaderRe.FindStringSubmatch(token); m != nil {
		prefix = m[1]
		instance, _ = strconv.Atoi(m[2])
	}

	kind, ok := kindByPrefix[strings.ToUpper(prefix)]
	if !ok {
		kind = models.KindUnknown
	}

	return models.CanonicalField{
		Name:           canonicalName(prefix, instance),
		Kind:           kind,
		DeviceInstance: instance,
		Unit:           strings.TrimSpace(unit),
		RawHeader:      token,
	}
}

// ParseCanonicalName reverses canonicalName for data read back from the
// staging layer, where only column names survive.
func ParseCanonicalName(name string) models.CanonicalField {
	prefix := name
	instance := 0
	if i := strings.LastIndex(name, "_"); i > 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil {
			prefix = name[:i]
			instance = n
		}
	}
	kind, ok := kindByPrefix[strings.ToUpper(prefix)]
	if !ok {
		kind = models.KindUnknown
	}
	return models.CanonicalField{Name: name, Kind: kind, DeviceInstance: instance}
}

func canonicalName(prefix string, instance int) string {
	name := strings.ToLower(prefix)
	if instance > 0 {
		name += "_" + strconv.Itoa(instance)
	}
	return name
}
