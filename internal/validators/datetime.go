package validators

import (
	"regexp"
	"time"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// IsCalendarDate exige o formato estrito YYYY-MM-DD e uma data real do
// calendário (2025-02-30 é rejeitado).
func IsCalendarDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsClockTime exige HH:MM em relógio de 24 horas.
func IsClockTime(s string) bool {
	return timeRe.MatchString(s)
}
