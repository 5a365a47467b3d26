package labtimetable

import (
	"fmt"
	"strconv"
	"strings"
)

// blockDurationMinutes is the fixed length of every course's weekly meeting:
// every course occupies a single weekly 3-hour block.
const blockDurationMinutes = 180

// endOfDay is the latest a 3-hour block may end.
const endOfDay = "18:00"

// minutesSinceMidnight parses an "HH:MM" string into minutes since
// 00:00. It is the only numeric primitive every higher layer is meant
// to go through; callers that pass a string outside the "HH:MM" grid
// get an error rather than a panic (wrapping the strconv error when a
// part is not a number).
func minutesSinceMidnight(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("labtimetable: malformed time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("labtimetable: malformed time %q: %w", t, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("labtimetable: malformed time %q: %w", t, err)
	}
	return h*60 + m, nil
}

// mustMinutes is minutesSinceMidnight for the fixed, package-internal
// slot vocabulary, where a parse failure is a programmer error.
func mustMinutes(t string) int {
	m, err := minutesSinceMidnight(t)
	if err != nil {
		panic(err)
	}
	return m
}

// formatMinutes is the inverse of minutesSinceMidnight: always
// zero-padded "HH:MM".
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// blockEnd returns the end of the 3-hour block starting at t.
func blockEnd(t string) string {
	return formatMinutes(mustMinutes(t) + blockDurationMinutes)
}

// isValidBlockStart reports whether a 3-hour block beginning at t ends
// no later than 18:00.
func isValidBlockStart(t string) bool {
	return mustMinutes(blockEnd(t)) <= mustMinutes(endOfDay)
}

// intervalsOverlap is the half-open interval overlap test: true iff
// ¬(a2 ≤ b1 ∨ b2 ≤ a1), operating on bare minute counts rather than
// time.Time.
func intervalsOverlap(a1, a2, b1, b2 int) bool {
	return !(a2 <= b1 || b2 <= a1)
}

// blocksOverlap is intervalsOverlap specialized to two "HH:MM" block
// starts of the fixed 3-hour duration.
func blocksOverlap(start1, start2 string) bool {
	s1, s2 := mustMinutes(start1), mustMinutes(start2)
	return intervalsOverlap(s1, s1+blockDurationMinutes, s2, s2+blockDurationMinutes)
}

// overlapMinutes returns how many minutes two "HH:MM"-delimited
// half-open intervals [start1,end1) and [start2,end2) share, clamped
// to zero when they don't overlap. Used by the vacancy report's
// utilization accounting.
func overlapMinutes(start1, end1, start2, end2 string) int {
	s1, e1 := mustMinutes(start1), mustMinutes(end1)
	s2, e2 := mustMinutes(start2), mustMinutes(end2)

	lo := s1
	if s2 > lo {
		lo = s2
	}
	hi := e1
	if e2 < hi {
		hi = e2
	}

	if hi < lo {
		return 0
	}
	return hi - lo
}
