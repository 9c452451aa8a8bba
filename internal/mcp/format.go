package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/edpsych-tools/reportgen/internal/report"
)

func formatExtractResult(result *report.ExtractResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal extraction result: %w", err)
	}
	return string(data), nil
}

func formatGenerateResult(result *report.GenerateResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generated report artifacts for %s\n", result.Admin.Name))
	sb.WriteString(fmt.Sprintf("Band table PDF: %s\n", result.BandsPath))
	if result.NarrativePath != "" {
		sb.WriteString(fmt.Sprintf("Narrative document: %s\n", result.NarrativePath))
	} else {
		sb.WriteString("Narrative document: skipped\n")
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
	}

	return sb.String()
}
