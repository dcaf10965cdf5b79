package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the ISO calendar-day format (no time component).
const Layout = "2006-01-02"

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks)$`)
	agoRe        = regexp.MustCompile(`^(\d+) (day|days|week|weeks) ago$`)
)

// Parser resolves calendar days in a fixed timezone.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of p that reads the current time from now.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the current calendar day in the parser's timezone.
func (p *Parser) Today() string {
	return p.Format(p.now())
}

// Format renders t as a calendar day in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(Layout)
}

// Resolve turns "today", "yesterday", "tomorrow", "in N days", "N days ago"
// or an explicit YYYY-MM-DD into a calendar day relative to the current time.
func (p *Parser) Resolve(when string) (string, error) {
	t, err := p.Parse(when, p.now())
	if err != nil {
		return "", err
	}
	return p.Format(t), nil
}

// Parse converts a day expression to the start of that day in the parser's timezone.
func (p *Parser) Parse(when string, baseTime time.Time) (time.Time, error) {
	when = strings.ToLower(strings.TrimSpace(when))

	switch when {
	case "", "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := inDurationRe.FindStringSubmatch(when); m != nil {
		return p.shift(baseTime, m[1], m[2], 1), nil
	}
	if m := agoRe.FindStringSubmatch(when); m != nil {
		return p.shift(baseTime, m[1], m[2], -1), nil
	}

	if t, err := time.ParseInLocation(Layout, when, p.location); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", when)
}

func (p *Parser) shift(baseTime time.Time, amount, unit string, sign int) time.Time {
	n, _ := strconv.Atoi(amount)
	if strings.HasPrefix(unit, "week") {
		n *= 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, sign*n))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
