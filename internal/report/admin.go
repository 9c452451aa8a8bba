package report

import (
	"fmt"
	"regexp"
	"strings"
)

// The administrative block occupies a fixed window at the top of the
// report: line 0 is the report banner, lines 1-9 hold the identity fields
// and the TESTS ADMINISTERED list, and scores start at line 10.
const (
	adminWindowStart = 1
	adminWindowEnd   = 10

	// ScoreStartIndex is the line index where score sections begin.
	ScoreStartIndex = 10

	testsAdministeredHeader = "TESTS ADMINISTERED"
)

// Per-line field patterns. Two fields share a line, so the left capture is
// non-greedy up to the right-hand label.
var (
	nameSchoolRe = regexp.MustCompile(`Name:\s*(.*?)\s+School:\s*(.*)`)
	dobTeacherRe = regexp.MustCompile(`Date of Birth:\s*(.*?)\s+Teacher:\s*(.*)`)
	ageGradeRe   = regexp.MustCompile(`Age:\s*(.*?)\s+Grade:\s*(.*)`)
	sexRe        = regexp.MustCompile(`Sex:\s*(.*?)\s+ID:`)

	// "MM/DD/YYYY (ABBR)" testing date entries.
	testDateRe = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+\(([^)]+)\)`)
)

// ParseAdministrative extracts the identity fields and the administered
// test list from the truncated line stream. Missing field labels leave the
// corresponding fields empty and are reported as warnings, not errors.
func ParseAdministrative(lines []string) (AdministrativeRecord, []AdministeredTest, []string) {
	var record AdministrativeRecord
	var warnings []string

	window := adminWindow(lines)

	adminLines := window
	var testNameLines []string
	if idx := indexOf(window, testsAdministeredHeader); idx >= 0 {
		adminLines = window[:idx]
		testNameLines = window[idx+1:]
	} else {
		warnings = append(warnings, fmt.Sprintf("%s header not found; no administered tests extracted", testsAdministeredHeader))
	}

	var dates []dateAbbrev
	for _, line := range adminLines {
		switch {
		case strings.Contains(line, "Name:") && strings.Contains(line, "School:"):
			if m := nameSchoolRe.FindStringSubmatch(line); m != nil {
				record.Name = m[1]
				record.School = m[2]
			}
		case strings.Contains(line, "Date of Birth:") && strings.Contains(line, "Teacher:"):
			if m := dobTeacherRe.FindStringSubmatch(line); m != nil {
				record.DateOfBirth = m[1]
				record.Teacher = m[2]
			}
		case strings.Contains(line, "Age:") && strings.Contains(line, "Grade:"):
			if m := ageGradeRe.FindStringSubmatch(line); m != nil {
				record.Age = m[1]
				record.Grade = m[2]
			}
		case strings.Contains(line, "Sex:"):
			if m := sexRe.FindStringSubmatch(line); m != nil {
				record.Sex = m[1]
			}
		case strings.Contains(line, "Date of Testing:"):
			if m := testDateRe.FindStringSubmatch(line); m != nil {
				dates = appendDate(dates, dateAbbrev{m[1], m[2]})
			}
		}
	}

	// Some layouts list additional testing dates on bare lines.
	for _, line := range adminLines {
		if m := testDateRe.FindStringSubmatch(line); m != nil && strings.HasPrefix(line, m[1]) {
			dates = appendDate(dates, dateAbbrev{m[1], m[2]})
		}
	}

	var tests []AdministeredTest
	for i, name := range testNameLines {
		if i >= len(dates) {
			break
		}
		tests = append(tests, AdministeredTest{
			Date:   dates[i].date,
			Abbrev: dates[i].abbrev,
			Name:   name,
		})
	}

	if missing := missingFields(record); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("administrative fields not found: %s", strings.Join(missing, ", ")))
	}

	return record, tests, warnings
}

type dateAbbrev struct {
	date   string
	abbrev string
}

func appendDate(dates []dateAbbrev, d dateAbbrev) []dateAbbrev {
	for _, existing := range dates {
		if existing == d {
			return dates
		}
	}
	return append(dates, d)
}

func adminWindow(lines []string) []string {
	if len(lines) <= adminWindowStart {
		return nil
	}
	end := adminWindowEnd
	if end > len(lines) {
		end = len(lines)
	}
	return lines[adminWindowStart:end]
}

func indexOf(lines []string, target string) int {
	for i, line := range lines {
		if line == target {
			return i
		}
	}
	return -1
}

func missingFields(r AdministrativeRecord) []string {
	var missing []string
	for _, f := range []struct {
		label string
		value string
	}{
		{"Name", r.Name},
		{"School", r.School},
		{"Date of Birth", r.DateOfBirth},
		{"Teacher", r.Teacher},
		{"Age", r.Age},
		{"Grade", r.Grade},
		{"Sex", r.Sex},
	} {
		if f.value == "" {
			missing = append(missing, f.label)
		}
	}
	return missing
}
