// Package timefmt converts event times between the 24-hour form used by
// input fields and the 12-hour form used for display and storage.
package timefmt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrUnparseableTime = errors.New("unparseable time")

var (
	rx24 = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	rx12 = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9])\s*([AaPp][Mm])$`)
)

// Display is the result of rendering a time for display. Parsed is false when
// the input was not a 24-hour time and Value holds the input unchanged.
type Display struct {
	Value  string
	Parsed bool
}

// To12Hour renders "HH:MM" as "h:mm AM/PM".
func To12Hour(hhmm string) Display {
	m := rx24.FindStringSubmatch(strings.TrimSpace(hhmm))
	if m == nil {
		return Display{Value: hhmm}
	}

	hours, _ := strconv.Atoi(m[1])

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	h := hours % 12
	if h == 0 {
		h = 12
	}

	return Display{
		Value:  fmt.Sprintf("%d:%s %s", h, m[2], suffix),
		Parsed: true,
	}
}

// To24Hour parses "h:mm AM/PM" into zero-padded "HH:MM".
func To24Hour(display string) (string, error) {
	m := rx12.FindStringSubmatch(strings.TrimSpace(display))
	if m == nil {
		return "", fmt.Errorf("%w %q", ErrUnparseableTime, display)
	}

	h, _ := strconv.Atoi(m[1])
	pm := strings.EqualFold(m[3], "pm")

	switch {
	case h == 12 && !pm:
		h = 0
	case h != 12 && pm:
		h += 12
	}

	return fmt.Sprintf("%02d:%s", h, m[2]), nil
}

// Normalize returns the canonical 12-hour form of a 24-hour or 12-hour time.
func Normalize(s string) (string, error) {
	if d := To12Hour(s); d.Parsed {
		return d.Value, nil
	}

	hhmm, err := To24Hour(s)
	if err != nil {
		return "", err
	}

	return To12Hour(hhmm).Value, nil
}
