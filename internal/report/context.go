package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/edpsych-tools/reportgen/internal/band"
)

// dateLayout is the MM/DD/YYYY format used throughout the report.
const dateLayout = "01/02/2006"

// rangeKeys maps each narrative placeholder to the subtest whose band
// label fills it. Lookups are case-insensitive; absent subtests resolve
// to the unavailable sentinel.
var rangeKeys = []struct {
	key         string
	achievement bool
	test        string
}{
	{"broad_oral_range", false, "BROAD ORAL LANGUAGE"},
	{"oral_expr_range", false, "ORAL EXPRESSION"},
	{"picture_vocab_range", false, "PICTURE VOCABULARY"},
	{"sentence_rep_range", false, "SENTENCE REPETITION"},
	{"listening_comp_range", false, "LISTENING COMP"},
	{"under_dir_range", false, "UNDERSTANDING DIRECTIONS"},
	{"oral_comp_range", false, "ORAL COMPREHENSION"},
	{"bas_read_range", true, "BASIC READING SKILLS"},
	{"let_word_range", true, "LETTER-WORD IDENTIFICATION"},
	{"word_att_range", true, "WORD ATTACK"},
	{"read_comp_range", true, "READING COMPREHENSION"},
	{"pass_comp_range", true, "PASSAGE COMPREHENSION"},
	{"read_recall_range", true, "READING RECALL"},
	{"read_flu_range", true, "READING FLUENCY"},
	{"oral_read_range", true, "ORAL READING"},
	{"sent_read_flu_range", true, "SENTENCE READING FLUENCY"},
	{"math_calc_range", true, "MATH CALCULATION SKILLS"},
	{"calc_range", true, "CALCULATION"},
	{"fact_flu_range", true, "MATH FACTS FLUENCY"},
	{"mat_pro_solv_range", true, "MATH PROBLEM SOLVING"},
	{"app_pro_range", true, "APPLIED PROBLEMS"},
	{"mat_matr_range", true, "NUMBER MATRICES"},
	{"writ_exp_range", true, "WRITTEN EXPRESSION"},
	{"sent_writ_flu_range", true, "SENTENCE WRITING FLUENCY"},
	{"writ_samp_range", true, "WRITING SAMPLES"},
	{"spel_range", true, "SPELLING"},
}

// NarrativeContext assembles the placeholder values for the narrative
// template from an extraction result and the clinician commentary.
func NarrativeContext(res *ExtractResult, commentary Commentary, now time.Time) map[string]interface{} {
	ctx := map[string]interface{}{
		"examiner_name":       res.Admin.Teacher,
		"student_full_name":   res.Admin.Name,
		"student_name":        studentFirstName(res.Admin.Name),
		"date_today":          now.Format(dateLayout),
		"test_dates":          formatTestDates(res.Tests),
		"spl":                 commentary.PrimaryLanguage,
		"testing_observation": commentary.TestingObservation,
		"vision_comment":      commentary.VisionComment,
		"teacher_input":       commentary.TeacherInput,
		"oral_tests":          formatScoreList(res.Oral.Scores),
		"achievement_tests":   formatScoreList(res.Achievement.Scores),
	}

	for _, rk := range rangeKeys {
		table := res.Oral
		if rk.achievement {
			table = res.Achievement
		}
		ctx[rk.key] = rangeFor(table, rk.test)
	}

	return ctx
}

// rangeFor returns the band label for the named subtest, matched
// case-insensitively, or the unavailable sentinel when absent.
func rangeFor(table ScoreTable, name string) string {
	for _, score := range table.Scores {
		if strings.EqualFold(score.Name, name) {
			return band.Classify(float64(score.SS)).Label
		}
	}
	return band.Unavailable
}

// studentFirstName extracts the given name from a "Last, First" full
// name, falling back to the full name when it is not in that form.
func studentFirstName(fullName string) string {
	parts := strings.SplitN(fullName, ", ", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return fullName
}

func formatTestDates(tests []AdministeredTest) string {
	entries := make([]string, 0, len(tests))
	for _, t := range tests {
		entries = append(entries, fmt.Sprintf("%s (%s)", t.Date, t.Abbrev))
	}
	return strings.Join(entries, "\n")
}

// formatScoreList flattens a score table to one line per subtest for the
// template, since placeholder replacement has no list rendering.
func formatScoreList(scores []TestScore) string {
	lines := make([]string, 0, len(scores))
	for _, s := range scores {
		lines = append(lines, fmt.Sprintf("%s: SS %d, PR %d", s.Name, s.SS, s.PR))
	}
	return strings.Join(lines, "\n")
}
