package report

import (
	"strings"
	"testing"
	"time"

	"github.com/edpsych-tools/reportgen/internal/band"
)

func extractResultFixture() *ExtractResult {
	return &ExtractResult{
		Admin: AdministrativeRecord{
			Name:    "Doe, Jane",
			Teacher: "Smith, Pat",
		},
		Tests: []AdministeredTest{
			{Date: "05/02/2025", Abbrev: "WJ IV OL", Name: "Oral Language"},
			{Date: "05/09/2025", Abbrev: "WJ IV ACH", Name: "Achievement"},
		},
		Oral: ScoreTable{
			Title: OralTitle,
			Scores: []TestScore{
				{Name: "BROAD ORAL LANGUAGE", SS: 95, PR: 38},
				{Name: "Picture Vocabulary", SS: 84, PR: 14},
			},
		},
		Achievement: ScoreTable{
			Title: AchievementTitle,
			Scores: []TestScore{
				{Name: "BASIC READING SKILLS", SS: 112, PR: 79},
				{Name: "Spelling", SS: 68, PR: 2},
			},
		},
	}
}

func TestNarrativeContextCoreFields(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	commentary := Commentary{
		TestingObservation: "engaged throughout",
		PrimaryLanguage:    "English",
		VisionComment:      "passed screening",
		TeacherInput:       "strong participation",
	}

	ctx := NarrativeContext(extractResultFixture(), commentary, now)

	checks := map[string]string{
		"examiner_name":       "Smith, Pat",
		"student_full_name":   "Doe, Jane",
		"student_name":        "Jane",
		"date_today":          "06/02/2025",
		"spl":                 "English",
		"testing_observation": "engaged throughout",
		"vision_comment":      "passed screening",
		"teacher_input":       "strong participation",
	}
	for key, want := range checks {
		if got, ok := ctx[key].(string); !ok || got != want {
			t.Errorf("ctx[%q] = %v, want %q", key, ctx[key], want)
		}
	}

	dates, _ := ctx["test_dates"].(string)
	if !strings.Contains(dates, "05/02/2025 (WJ IV OL)") || !strings.Contains(dates, "05/09/2025 (WJ IV ACH)") {
		t.Errorf("test_dates = %q, want both formatted entries", dates)
	}
}

func TestNarrativeContextRanges(t *testing.T) {
	ctx := NarrativeContext(extractResultFixture(), Commentary{}, time.Now())

	if got := ctx["broad_oral_range"]; got != "Average" {
		t.Errorf("broad_oral_range = %v, want Average (SS 95)", got)
	}
	if got := ctx["picture_vocab_range"]; got != "Low Average" {
		t.Errorf("picture_vocab_range = %v, want Low Average (SS 84)", got)
	}
	if got := ctx["bas_read_range"]; got != "High Average" {
		t.Errorf("bas_read_range = %v, want High Average (SS 112)", got)
	}
	if got := ctx["spel_range"]; got != "Very Low" {
		t.Errorf("spel_range = %v, want Very Low (SS 68)", got)
	}

	// Subtests absent from the extraction resolve to the sentinel.
	if got := ctx["word_att_range"]; got != band.Unavailable {
		t.Errorf("word_att_range = %v, want %q", got, band.Unavailable)
	}

	// Every declared range key must be present in the context.
	for _, rk := range rangeKeys {
		if _, ok := ctx[rk.key]; !ok {
			t.Errorf("missing range key %q", rk.key)
		}
	}
}

func TestNarrativeContextScoreLists(t *testing.T) {
	ctx := NarrativeContext(extractResultFixture(), Commentary{}, time.Now())

	oral, _ := ctx["oral_tests"].(string)
	if !strings.Contains(oral, "BROAD ORAL LANGUAGE: SS 95, PR 38") {
		t.Errorf("oral_tests = %q, missing formatted score line", oral)
	}

	achievement, _ := ctx["achievement_tests"].(string)
	if !strings.Contains(achievement, "Spelling: SS 68, PR 2") {
		t.Errorf("achievement_tests = %q, missing formatted score line", achievement)
	}
}

func TestStudentFirstName(t *testing.T) {
	tests := []struct {
		full string
		want string
	}{
		{"Doe, Jane", "Jane"},
		{"Doe", "Doe"},
		{"", ""},
		{"Doe, ", "Doe, "}, // malformed split falls back to the full name
	}

	for _, tt := range tests {
		if got := studentFirstName(tt.full); got != tt.want {
			t.Errorf("studentFirstName(%q) = %q, want %q", tt.full, got, tt.want)
		}
	}
}

func TestRangeForCaseInsensitive(t *testing.T) {
	table := ScoreTable{Scores: []TestScore{{Name: "Spelling", SS: 100}}}
	if got := rangeFor(table, "SPELLING"); got != "Average" {
		t.Errorf("rangeFor case-insensitive lookup = %q, want Average", got)
	}
}
