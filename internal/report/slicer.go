package report

import (
	"fmt"
	"strings"

	"github.com/edpsych-tools/reportgen/internal/pdf"
)

// StopPhrase marks the point in the report after which no score tables
// appear; everything from the first line containing it onward is dropped.
const StopPhrase = "STANDARD SCORES DISCREPANCY Interpretation at"

// Section titles used on the rendered artifacts.
const (
	OralTitle        = "Woodcock-Johnson IV Tests of Oral Language"
	AchievementTitle = "Woodcock-Johnson IV Tests of Achievement"
)

// The headers in the report text carry a per-student norms suffix, e.g.
// "(Norms based on age 15-4)", so sections are located by stable prefix.
const (
	oralHeaderPrefix        = "Woodcock-Johnson IV Tests of Oral Language"
	achievementHeaderPrefix = "Woodcock-Johnson IV Tests of Achievement"
)

// LinesUntil flattens the page lines into a single stream, truncated just
// before the first line containing stopPhrase. If the phrase never
// appears, all lines are returned.
func LinesUntil(pages []pdf.Page, stopPhrase string) []string {
	var collected []string
	for _, page := range pages {
		for _, line := range page.Lines {
			if strings.Contains(line, stopPhrase) {
				return collected
			}
			collected = append(collected, line)
		}
	}
	return collected
}

// SplitScoreSections divides the score portion of the line stream into the
// oral-language and achievement segments. Both section headers must be
// present; the report layout is otherwise unrecognizable.
func SplitScoreSections(lines []string) (oral, achievement []string, err error) {
	oralIdx := indexWithPrefix(lines, oralHeaderPrefix)
	if oralIdx < 0 {
		return nil, nil, fmt.Errorf("oral language section header not found")
	}

	achieveIdx := indexWithPrefix(lines[oralIdx:], achievementHeaderPrefix)
	if achieveIdx < 0 {
		return nil, nil, fmt.Errorf("achievement section header not found")
	}
	achieveIdx += oralIdx

	return lines[oralIdx:achieveIdx], lines[achieveIdx:], nil
}

func indexWithPrefix(lines []string, prefix string) int {
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return i
		}
	}
	return -1
}
