package roundtime

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

var (
	ErrUnrecognizedDate = errors.New("could not recognize date")
	ErrPlayedInFuture   = errors.New("played date is in the future")
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// PlayedAtParser reads when a round was played from user input: RFC 3339,
// a plain date, or English such as "yesterday" or "last saturday 9am PST".
type PlayedAtParser struct {
	TimezoneMap map[string]string
	clock       Clock
	when        *when.Parser
}

func NewPlayedAtParser(clock Clock) *PlayedAtParser {
	if clock == nil {
		clock = RealClock{}
	}
	w := when.New(nil)
	w.Add(en.All...)
	return &PlayedAtParser{
		TimezoneMap: map[string]string{
			"PST": "America/Los_Angeles",
			"PDT": "America/Los_Angeles",
			"MST": "America/Denver",
			"MDT": "America/Denver",
			"CST": "America/Chicago",
			"CDT": "America/Chicago",
			"EST": "America/New_York",
			"EDT": "America/New_York",
			"UTC": "UTC",
		},
		clock: clock,
		when:  w,
	}
}

// GetTimezoneFromInput finds a US timezone abbreviation or IANA name among
// the words of input.
func (p *PlayedAtParser) GetTimezoneFromInput(input string) (string, bool) {
	for _, word := range strings.Fields(input) {
		upper := strings.ToUpper(strings.Trim(word, ".,;()"))
		if full, ok := p.TimezoneMap[upper]; ok {
			return full, true
		}
		for _, full := range p.TimezoneMap {
			if upper == strings.ToUpper(full) {
				return full, true
			}
		}
	}
	return "", false
}

var compactClock = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

// Parse returns nil for empty input. Times without a zone are read in UTC.
func (p *PlayedAtParser) Parse(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	now := p.clock.Now()

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return p.notFuture(t, now)
	}

	loc := time.UTC
	if name, ok := p.GetTimezoneFromInput(input); ok {
		l, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
		}
		loc = l
	}

	if t, err := time.ParseInLocation(time.DateOnly, input, loc); err == nil {
		return p.notFuture(t, now)
	}

	normalized := compactClock.ReplaceAllString(strings.ToLower(input), "$1:$2 $3")
	r, err := p.when.Parse(normalized, now.In(loc))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnrecognizedDate, input, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedDate, input)
	}
	return p.notFuture(r.Time.In(loc), now)
}

func (p *PlayedAtParser) notFuture(t, now time.Time) (*time.Time, error) {
	// A minute of slack covers "now" and clock skew.
	if t.After(now.Add(time.Minute)) {
		return nil, fmt.Errorf("%w: %s", ErrPlayedInFuture, t.Format(time.RFC3339))
	}
	utc := t.UTC()
	return &utc, nil
}
