package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reRelativeDays = regexp.MustCompile(`^\+(\d+)d(?:\s+(\d{1,2}):(\d{2}))?$`)
	reDayWord      = regexp.MustCompile(`^(วันนี้|พรุ่งนี้|today|tomorrow)(?:\s+(\d{1,2}):(\d{2}))?$`)
	reAfternoon    = regexp.MustCompile(`^(?:ก่อน)?\s*บ่าย\s*(\d{1,2})(?::(\d{2}))?$`)
	reThaiWeekday  = regexp.MustCompile(`^(?:วัน)?(อาทิตย์|จันทร์|อังคาร|พุธ|พฤหัสบดี|พฤหัส|ศุกร์|เสาร์)(นี้|หน้า)(?:\s+(\d{1,2}):(\d{2}))?$`)
	reDayMonth     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:\s+(\d{1,2}):(\d{2}))?$`)
)

// ThaiWeekdays maps Thai day names to time.Weekday.
var ThaiWeekdays = map[string]time.Weekday{
	"อาทิตย์":   time.Sunday,
	"จันทร์":    time.Monday,
	"อังคาร":    time.Tuesday,
	"พุธ":       time.Wednesday,
	"พฤหัส":     time.Thursday,
	"พฤหัสบดี":  time.Thursday,
	"ศุกร์":     time.Friday,
	"เสาร์":     time.Saturday,
}

// Parser converts relative deadline phrases to absolute wall-clock times.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Bangkok"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves phrases in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts a deadline phrase to an absolute time relative to now.
// Phrases outside the recognised grammar come back with Resolved=false and
// the phrase unchanged.
func (p *Parser) Resolve(phrase string, now time.Time) Resolution {
	res := Resolution{Phrase: phrase}
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return res
	}
	now = now.In(p.location)

	var (
		day          time.Time
		hour, minute int
		ok           bool
	)

	if m := reRelativeDays.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return res
		}
		day = now.AddDate(0, 0, n)
		hour, minute, ok = clockOr(m[2], m[3], defaultEndHour, defaultEndMinute)
	} else if m := reDayWord.FindStringSubmatch(s); m != nil {
		if m[1] == "พรุ่งนี้" || m[1] == "tomorrow" {
			day = now.AddDate(0, 0, 1)
			hour, minute, ok = clockOr(m[2], m[3], defaultStartHour, defaultStartMinute)
		} else {
			day = now
			hour, minute, ok = clockOr(m[2], m[3], defaultEndHour, defaultEndMinute)
		}
	} else if m := reAfternoon.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h < 1 || h > 11 {
			return res
		}
		day = now
		hour, minute, ok = clockOr(strconv.Itoa(12+h), m[2], 0, 0)
	} else if m := reThaiWeekday.FindStringSubmatch(s); m != nil {
		day = nextWeekday(now, ThaiWeekdays[m[1]])
		hour, minute, ok = clockOr(m[3], m[4], defaultEndHour, defaultEndMinute)
	} else if m := reDayMonth.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		if mo < 1 || mo > 12 || d < 1 || d > daysIn(time.Month(mo), now.Year()) {
			return res
		}
		day = time.Date(now.Year(), time.Month(mo), d, 0, 0, 0, 0, p.location)
		hour, minute, ok = clockOr(m[3], m[4], defaultEndHour, defaultEndMinute)
	} else {
		return res
	}

	if !ok {
		return res
	}
	res.Time = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
	res.Resolved = true
	return res
}

// ResolveString is Resolve followed by Resolution.String.
func (p *Parser) ResolveString(phrase string, now time.Time) string {
	return p.Resolve(phrase, now).String()
}

// nextWeekday returns the nearest future day falling on target, never today.
func nextWeekday(now time.Time, target time.Weekday) time.Time {
	diff := (int(target) - int(now.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return now.AddDate(0, 0, diff)
}

// clockOr parses an optional HH / MM pair, falling back to the defaults when
// the hour is absent. ok is false for out-of-range clock values.
func clockOr(hh, mm string, defHour, defMinute int) (int, int, bool) {
	if hh == "" {
		return defHour, defMinute, true
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	m := 0
	if mm != "" {
		if m, err = strconv.Atoi(mm); err != nil {
			return 0, 0, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
