package render

import (
	"fmt"
	"os"

	docx "github.com/lukasjarosch/go-docx"
)

// Narrative fills the narrative DOCX template with the pipeline context
// and writes the result to outPath. Placeholders in the template use the
// library's default {key} delimiters.
func Narrative(templatePath, outPath string, context map[string]interface{}) error {
	if _, err := os.Stat(templatePath); err != nil {
		return fmt.Errorf("narrative template unavailable: %w", err)
	}

	doc, err := docx.Open(templatePath)
	if err != nil {
		return fmt.Errorf("open narrative template: %w", err)
	}

	if err := doc.ReplaceAll(docx.PlaceholderMap(context)); err != nil {
		return fmt.Errorf("fill narrative template: %w", err)
	}

	if err := doc.WriteToFile(outPath); err != nil {
		return fmt.Errorf("write narrative document: %w", err)
	}

	return nil
}
