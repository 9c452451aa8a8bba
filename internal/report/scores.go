package report

import (
	"strconv"
	"strings"
	"unicode"
)

// minScoreTokens is the smallest token count a score line can have: a name
// token plus the W/AE/RPI/SS/PR numeric columns.
const minScoreTokens = 5

// ParseScores extracts (name, SS, PR) rows from the lines of one score
// section. The layout is known but not contractually guaranteed, so the
// parse is best-effort: any line that does not fit is skipped without
// error. Duplicate rows (continuation pages repeat cluster lines) are
// dropped, keeping the first occurrence.
func ParseScores(lines []string) []TestScore {
	var scores []TestScore
	seen := make(map[TestScore]bool)

	for _, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) < minScoreTokens {
			continue
		}

		ss, err := strconv.Atoi(tokens[len(tokens)-2])
		if err != nil {
			continue
		}
		pr, err := strconv.Atoi(tokens[len(tokens)-1])
		if err != nil {
			continue
		}

		// The subtest name is everything before the first numeric column.
		name := ""
		for i, token := range tokens {
			if isNumericToken(token) {
				name = strings.Join(tokens[:i], " ")
				break
			}
		}
		if name == "" {
			continue
		}

		score := TestScore{Name: name, SS: ss, PR: pr}
		if seen[score] {
			continue
		}
		seen[score] = true
		scores = append(scores, score)
	}

	return scores
}

// OrderUppercaseFirst returns the scores with fully-uppercase names (broad
// clusters) ahead of the individual subtests, preserving relative order
// within each group.
func OrderUppercaseFirst(scores []TestScore) []TestScore {
	ordered := make([]TestScore, 0, len(scores))
	for _, s := range scores {
		if isUppercaseName(s.Name) {
			ordered = append(ordered, s)
		}
	}
	for _, s := range scores {
		if !isUppercaseName(s.Name) {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// isNumericToken reports whether the token is a number in the report's
// column format: digits with at most one decimal point.
func isNumericToken(token string) bool {
	if token == "" {
		return false
	}
	dots := 0
	for _, r := range token {
		if r == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return token != "." && len(token) > dots
}

// isUppercaseName reports whether the name contains cased letters and all
// of them are uppercase.
func isUppercaseName(name string) bool {
	hasLetter := false
	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}
