package meteocontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

func TestFieldFromHeader(t *testing.T) {
	cases := []struct {
		token    string
		kind     models.FieldKind
		instance int
		name     string
	}{
		{"G_H", models.KindIrradiance, 0, "g_h"},
		{"G_M", models.KindIrradiance, 0, "g_m"},
		{"T_U", models.KindAmbientTemp, 0, "t_u"},
		{"T_M", models.KindModuleTemp, 0, "t_m"},
		{"T_WR(7)", models.KindInverterTemp, 7, "t_wr_7"},
		{"I_DC(1)", models.KindDcCurrent, 1, "i_dc_1"},
		{"U_DC(13)", models.KindDcVoltage, 13, "u_dc_13"},
		{"I_AC(2)", models.KindAcCurrent, 2, "i_ac_2"},
		{"U_AC(2)", models.KindAcVoltage, 2, "u_ac_2"},
		{"P_AC(3)", models.KindAcPower, 3, "p_ac_3"},
		{"E_INT(4)", models.KindCumulativeEnergy, 4, "e_int_4"},
		// The nested parenthetical is a serial number, not the instance.
		{"P_AC(3(12345))", models.KindAcPower, 3, "p_ac_3"},
		// Documented non-diagnostic columns are preserved, not dropped.
		{"F_AC", models.KindUnknown, 0, "f_ac"},
		{"AVAIL", models.KindUnknown, 0, "avail"},
		{"WHATEVER(2)", models.KindUnknown, 2, "whatever_2"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			f := FieldFromHeader(tc.token, "")
			assert.Equal(t, tc.kind, f.Kind)
			assert.Equal(t, tc.instance, f.DeviceInstance)
			assert.Equal(t, tc.name, f.Name)
			assert.Equal(t, tc.token, f.RawHeader)
		})
	}
}

func TestFieldFromHeaderKeepsUnit(t *testing.T) {
	f := FieldFromHeader("P_AC(3)", "W")
	assert.Equal(t, "W", f.Unit)
	assert.True(t, f.PerDevice())
}

func TestParseCanonicalName(t *testing.T) {
	cases := []struct {
		name     string
		kind     models.FieldKind
		instance int
	}{
		{"g_h", models.KindIrradiance, 0},
		{"t_wr_7", models.KindInverterTemp, 7},
		{"p_ac_3", models.KindAcPower, 3},
		{"e_int_12", models.KindCumulativeEnergy, 12},
		{"f_ac", models.KindUnknown, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ParseCanonicalName(tc.name)
			assert.Equal(t, tc.kind, f.Kind)
			assert.Equal(t, tc.instance, f.DeviceInstance)
			assert.Equal(t, tc.name, f.Name)
		})
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	// Derivation and name reverse-parsing agree on kind and instance.
	for _, token := range []string{"G_H", "T_WR(7)", "P_AC(3(12345))", "E_INT(4)"} {
		derived := FieldFromHeader(token, "")
		reversed := ParseCanonicalName(derived.Name)
		assert.Equal(t, derived.Kind, reversed.Kind, token)
		assert.Equal(t, derived.DeviceInstance, reversed.DeviceInstance, token)
	}
}
