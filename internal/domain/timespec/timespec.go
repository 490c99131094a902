// Package timespec turns free-form textual time ranges into validated,
// clamped cut instructions.
package timespec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTime parses a single time token. Accepted forms:
//
//	SS[.fff]        e.g. 95.25
//	MM:SS[.fff]     e.g. 1:35.25 (seconds must be two digits)
//	HH:MM:SS[.fff]  e.g. 00:01:35.25
//
// Whitespace around the token is ignored. Fractional seconds may carry any
// number of digits.
func ParseTime(token string) (time.Duration, error) {
	t := strings.TrimSpace(token)
	parts := strings.Split(t, ":")
	switch len(parts) {
	case 1:
		whole, frac, ok := splitSeconds(parts[0])
		if !ok {
			return 0, &TimeFormatError{Token: t}
		}
		sec, err := strconv.ParseUint(whole, 10, 32)
		if err != nil {
			return 0, &TimeFormatError{Token: t}
		}
		return secondsToDuration(float64(sec) + frac), nil
	case 2:
		m, ok := clockField(parts[0], 1, 2)
		if !ok {
			return 0, &TimeFormatError{Token: t}
		}
		whole, frac, ok := splitSeconds(parts[1])
		if !ok || len(whole) != 2 {
			return 0, &TimeFormatError{Token: t}
		}
		s, _ := strconv.Atoi(whole)
		return secondsToDuration(float64(m*60+s) + frac), nil
	case 3:
		if !isDigits(parts[0]) {
			return 0, &TimeFormatError{Token: t}
		}
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, &TimeFormatError{Token: t}
		}
		m, ok := clockField(parts[1], 1, 2)
		if !ok {
			return 0, &TimeFormatError{Token: t}
		}
		whole, frac, ok := splitSeconds(parts[2])
		if !ok || len(whole) != 2 {
			return 0, &TimeFormatError{Token: t}
		}
		s, _ := strconv.Atoi(whole)
		return secondsToDuration(float64(h*3600+m*60+s) + frac), nil
	default:
		return 0, &TimeFormatError{Token: t}
	}
}

// FormatTime renders a duration as HH:MM:SS, or HH:MM:SS.mmm when it has a
// fractional part. This is the form ffmpeg expects for -ss and -t.
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	h := ms / 3_600_000
	m := (ms % 3_600_000) / 60_000
	s := (ms % 60_000) / 1000
	frac := ms % 1000
	if frac == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, frac)
}

// splitSeconds validates a seconds field with an optional fraction and
// returns the whole-digit prefix plus the fraction value.
func splitSeconds(s string) (whole string, frac float64, ok bool) {
	whole = s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits := s[i+1:]
		if digits == "" || !isDigits(digits) {
			return "", 0, false
		}
		f, err := strconv.ParseFloat("0."+digits, 64)
		if err != nil {
			return "", 0, false
		}
		whole, frac = s[:i], f
	}
	if whole == "" || !isDigits(whole) {
		return "", 0, false
	}
	return whole, frac, true
}

func clockField(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen || !isDigits(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
