package chapters

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts an SRT timestamp (hh:mm:ss,mmm) to seconds.
func ParseTimestamp(ts string) (float64, error) {
	timePart, msPart, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q: missing millisecond separator", ts)
	}

	fields := strings.Split(timePart, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected hh:mm:ss,mmm", ts)
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in timestamp %q: %w", ts, err)
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in timestamp %q: %w", ts, err)
	}
	seconds, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in timestamp %q: %w", ts, err)
	}
	millis, err := strconv.Atoi(msPart)
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds in timestamp %q: %w", ts, err)
	}

	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000.0, nil
}

// FormatClock converts seconds to the display form used for chapter
// timestamps: "h:mm:ss" when there is a whole-hour component, "m:ss"
// otherwise. Fractional seconds are truncated, never rounded, so chunk
// start times stay monotonic with their source spans.
func FormatClock(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// ParseClock converts a display-form timestamp ("h:mm:ss", "m:ss" or
// bare seconds) back to whole seconds.
func ParseClock(display string) (int, error) {
	fields := strings.Split(display, ":")

	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %w", display, err)
		}
		parts = append(parts, n)
	}

	switch len(parts) {
	case 3:
		return parts[0]*3600 + parts[1]*60 + parts[2], nil
	case 2:
		return parts[0]*60 + parts[1], nil
	case 1:
		return parts[0], nil
	default:
		return 0, fmt.Errorf("invalid clock value %q", display)
	}
}
