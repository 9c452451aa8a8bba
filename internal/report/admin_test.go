package report

import (
	"strings"
	"testing"
)

// reportHead reproduces the fixed administrative block layout: a banner
// line, identity lines, the TESTS ADMINISTERED list, then score sections.
func reportHead() []string {
	return []string{
		"Woodcock-Johnson IV Score Report",
		"Name: Doe, Jane School: Lincoln ES",
		"Date of Birth: 03/14/2010 Teacher: Smith, Pat",
		"Age: 15 years, 4 months Grade: 9.7",
		"Sex: Female ID: 000123",
		"Date of Testing: 05/02/2025 (WJ IV OL)",
		"05/09/2025 (WJ IV ACH)",
		"TESTS ADMINISTERED",
		"Woodcock-Johnson IV Tests of Oral Language",
		"Woodcock-Johnson IV Tests of Achievement Form A",
	}
}

func TestParseAdministrative(t *testing.T) {
	record, tests, warnings := ParseAdministrative(reportHead())

	if record.Name != "Doe, Jane" {
		t.Errorf("Name = %q, want 'Doe, Jane'", record.Name)
	}
	if record.School != "Lincoln ES" {
		t.Errorf("School = %q, want 'Lincoln ES'", record.School)
	}
	if record.DateOfBirth != "03/14/2010" {
		t.Errorf("DateOfBirth = %q, want '03/14/2010'", record.DateOfBirth)
	}
	if record.Teacher != "Smith, Pat" {
		t.Errorf("Teacher = %q, want 'Smith, Pat'", record.Teacher)
	}
	if record.Age != "15 years, 4 months" {
		t.Errorf("Age = %q, want '15 years, 4 months'", record.Age)
	}
	if record.Grade != "9.7" {
		t.Errorf("Grade = %q, want '9.7'", record.Grade)
	}
	if record.Sex != "Female" {
		t.Errorf("Sex = %q, want 'Female'", record.Sex)
	}

	if len(tests) != 2 {
		t.Fatalf("expected 2 administered tests, got %d: %+v", len(tests), tests)
	}
	if tests[0].Date != "05/02/2025" || tests[0].Abbrev != "WJ IV OL" {
		t.Errorf("first test = %+v, want 05/02/2025 (WJ IV OL)", tests[0])
	}
	if tests[0].Name != "Woodcock-Johnson IV Tests of Oral Language" {
		t.Errorf("first test name = %q", tests[0].Name)
	}
	if tests[1].Date != "05/09/2025" || tests[1].Abbrev != "WJ IV ACH" {
		t.Errorf("second test = %+v, want 05/09/2025 (WJ IV ACH)", tests[1])
	}

	if len(warnings) != 0 {
		t.Errorf("expected no warnings for complete block, got %v", warnings)
	}
}

func TestParseAdministrativeMultiSpaceLine(t *testing.T) {
	lines := reportHead()
	lines[1] = "Name: Doe, Jane   School: Lincoln ES"

	record, _, _ := ParseAdministrative(lines)
	if record.Name != "Doe, Jane" || record.School != "Lincoln ES" {
		t.Errorf("got Name=%q School=%q, want 'Doe, Jane' / 'Lincoln ES'", record.Name, record.School)
	}
}

func TestParseAdministrativeMissingLabels(t *testing.T) {
	lines := reportHead()
	lines[3] = "something without the expected labels"

	record, _, warnings := ParseAdministrative(lines)

	// Absent labels silently leave the fields empty.
	if record.Age != "" || record.Grade != "" {
		t.Errorf("expected empty Age/Grade, got %q/%q", record.Age, record.Grade)
	}
	if record.Name != "Doe, Jane" {
		t.Errorf("other fields should still parse, Name = %q", record.Name)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Age") && strings.Contains(w, "Grade") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning naming the missing fields, got %v", warnings)
	}
}

func TestParseAdministrativeNoTestsHeader(t *testing.T) {
	lines := reportHead()
	lines[7] = "not the expected header"

	_, tests, warnings := ParseAdministrative(lines)

	if len(tests) != 0 {
		t.Errorf("expected no administered tests without the header, got %+v", tests)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning about the missing header")
	}
}

func TestParseAdministrativeDuplicateDates(t *testing.T) {
	lines := reportHead()
	// The same date entry appearing on a labeled and a bare line must not
	// be counted twice.
	lines[6] = "05/02/2025 (WJ IV OL)"
	lines[5] = "Date of Testing: 05/02/2025 (WJ IV OL)"

	_, tests, _ := ParseAdministrative(lines)
	if len(tests) != 1 {
		t.Errorf("expected deduplicated single test, got %d: %+v", len(tests), tests)
	}
}

func TestParseAdministrativeShortInput(t *testing.T) {
	record, tests, _ := ParseAdministrative([]string{"banner only"})
	if record != (AdministrativeRecord{}) {
		t.Errorf("expected empty record for short input, got %+v", record)
	}
	if len(tests) != 0 {
		t.Errorf("expected no tests for short input, got %+v", tests)
	}
}

func TestScoreStartIndex(t *testing.T) {
	if ScoreStartIndex != 10 {
		t.Errorf("score sections start at line 10 of the fixed layout, got %d", ScoreStartIndex)
	}
}
