package route

import "fmt"

const minutesPerDay = 24 * 60

// Clock is a time of day in minutes since midnight.
type Clock int

// ParseClock parses a strict 24-hour "HH:MM" value.
// Single-digit fields, seconds and surrounding whitespace are rejected.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, errInvalidTime(s)
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok || h > 23 {
		return 0, errInvalidTime(s)
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok || m > 59 {
		return 0, errInvalidTime(s)
	}
	return Clock(h*60 + m), nil
}

// MustParseClock is like ParseClock but panics on malformed input.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf builds a Clock from hour and minute fields.
func ClockOf(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &ValidationError{Field: "time", Value: fmt.Sprintf("%d:%d", hour, minute), Msg: "invalid time format"}
	}
	return Clock(hour*60 + minute), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// After reports whether c is strictly later in the day than other.
func (c Clock) After(other Clock) bool { return c > other }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	if c < 0 || c >= minutesPerDay {
		return nil, fmt.Errorf("clock value %d out of range", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func errInvalidTime(s string) error {
	return &ValidationError{Field: "time", Value: s, Msg: "invalid time format"}
}
