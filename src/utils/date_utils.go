package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the date layout used by the monitoring exports (DD.MM.YYYY).
const DateFormat = "02.01.2006"

// spanishMonths maps the month names used in export filenames.
var spanishMonths = map[string]time.Month{
	"Enero": time.January, "Febrero": time.February, "Marzo": time.March,
	"Abril": time.April, "Mayo": time.May, "Junio": time.June,
	"Julio": time.July, "Agosto": time.August, "Septiembre": time.September,
	"Octubre": time.October, "Noviembre": time.November, "Diciembre": time.December,
}

// MonthFromSpanish resolves a Spanish month name to its number.
func MonthFromSpanish(name string) (time.Month, bool) {
	m, ok := spanishMonths[name]
	return m, ok
}

// CombineDateTime parses a "DD.MM.YYYY" date token and an "HH:MM:SS" time
// token into a single timestamp. The time token is parsed by hand because
// the exporter emits "24:00:00" for midnight at the end of a day, which
// rolls over to 00:00 of the following day.
func CombineDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := time.Parse(DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid time %q", timeStr)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", timeStr)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || s < 0 || s > 59 || (h == 24 && (m != 0 || s != 0)) {
		return time.Time{}, fmt.Errorf("time %q out of range", timeStr)
	}

	offset := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return day.Add(offset), nil
}
