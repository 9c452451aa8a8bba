package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts per-page text lines from PDF files. Text fragments are
// grouped by row position and joined left-to-right, which reproduces the
// visual line layout of the fixed-format score report.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new PDF reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// ExtractText extracts the text of every page as ordered lines. Pages
// whose text cannot be decoded are skipped with a warning rather than
// failing the whole document.
func (r *Reader) ExtractText(req ExtractTextRequest) (*ExtractTextResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	result := &ExtractTextResult{
		Path: req.Path,
		Size: fileInfo.Size(),
	}

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		lines, err := extractPageLines(page)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("page %d: %v", pageNum, err))
			continue
		}

		result.Pages = append(result.Pages, Page{Number: pageNum, Lines: lines})
	}

	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}

	return result, nil
}

// extractPageLines groups the page's text fragments into visual rows.
// GetTextByRow returns rows top-to-bottom with fragments sorted
// left-to-right within each row.
func extractPageLines(page pdf.Page) ([]string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("extract rows: %w", err)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var builder strings.Builder
		for i, text := range row.Content {
			// Fragments arrive one per draw operation with no space glyph
			// between columns, so adjacent fragments need a separator.
			if i > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(text.S)
		}

		// Collapse run boundaries and stray spacing into single spaces so
		// downstream tokenization sees a stable layout.
		line := strings.Join(strings.Fields(builder.String()), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// validatePDFFile performs basic validation on a PDF file
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}
