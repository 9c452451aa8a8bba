package render

import (
	"strings"

	"github.com/edpsych-tools/reportgen/internal/band"
)

// MaxRowsPerPage is how many score rows fit on one band-table page.
const MaxRowsPerPage = 10

// compositeWrapWidth is the character width the subtest name column wraps at.
const compositeWrapWidth = 15

// Table is the renderer's input: one titled section of scores.
type Table struct {
	Title string
	Rows  []ScoreRow
}

// ScoreRow is a single subtest score to place on the band grid.
type ScoreRow struct {
	Name string
	SS   int
}

// bandRow is a score row resolved to its band column.
type bandRow struct {
	composite []string // wrapped name lines
	bandLabel string
	ss        int
}

// buildBandRows classifies each score and wraps its name for the
// composite column.
func buildBandRows(rows []ScoreRow) []bandRow {
	result := make([]bandRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, bandRow{
			composite: WrapText(row.Name, compositeWrapWidth),
			bandLabel: band.Classify(float64(row.SS)).Label,
			ss:        row.SS,
		})
	}
	return result
}

// paginate splits rows into chunks of at most max rows.
func paginate(rows []bandRow, max int) [][]bandRow {
	if max <= 0 {
		max = MaxRowsPerPage
	}
	var chunks [][]bandRow
	for start := 0; start < len(rows); start += max {
		end := start + max
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}

// WrapText greedily wraps text into lines of at most maxWidth characters.
// Words longer than the width get a line of their own.
func WrapText(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) <= maxWidth {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}
