// Package dateutil converts the heterogeneous date strings found in
// statement exports into canonical YYYY-MM-DD form.
package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoPattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	numericPattern   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2}|\d{4}))?$`)
	monthNamePattern = regexp.MustCompile(`^([A-Za-z]{3,})\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?$`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Normalize converts raw into canonical YYYY-MM-DD form, using fallbackYear
// when the input carries no year. Rules are tried in order and the first
// match wins:
//
//  1. Already YYYY-MM-DD: returned unchanged.
//  2. M/D, M/D/YY, M/D/YYYY (slash or dash): zero-padded; a 2-digit year
//     gets 2000 added; a missing year uses fallbackYear.
//  3. "<MonthName> D" or "<MonthName> D YYYY", case-insensitive, month name
//     3+ letters.
//
// Anything else, including empty or whitespace-only input, yields "".
// Callers drop the owning record on ""; normalization never fails hard.
func Normalize(raw string, fallbackYear int) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if isoPattern.MatchString(s) {
		return s
	}

	if m := numericPattern.FindStringSubmatch(s); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil || month < 1 || month > 12 {
			return ""
		}
		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > 31 {
			return ""
		}
		year := fallbackYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				year += 2000
			}
		}
		return formatDate(year, month, day)
	}

	if m := monthNamePattern.FindStringSubmatch(s); m != nil {
		month := resolveMonthName(m[1])
		if month == 0 {
			return ""
		}
		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > 31 {
			return ""
		}
		year := fallbackYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return formatDate(year, month, day)
	}

	return ""
}

// MonthName resolves an English month name or abbreviation (3+ letters,
// case-insensitive) to its 1-based month number, or 0 if unknown.
func MonthName(name string) int {
	return resolveMonthName(name)
}

func resolveMonthName(name string) int {
	lower := strings.ToLower(name)
	if len(lower) < 3 {
		return 0
	}
	for i, full := range monthNames {
		if strings.HasPrefix(full, lower) {
			return i + 1
		}
	}
	return 0
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// FirstOfMonth returns the canonical date of the first day of the given
// month and year.
func FirstOfMonth(year, month int) string {
	return formatDate(year, month, 1)
}
