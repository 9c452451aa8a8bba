package pdf

// Page holds the text of one PDF page as reading-order lines.
type Page struct {
	Number int      `json:"number"`
	Lines  []string `json:"lines"`
}

// Request Types

// ExtractTextRequest represents a request to extract per-page text lines
type ExtractTextRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest represents a request to validate a PDF file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// Response Types

// ExtractTextResult represents the result of a text extraction operation
type ExtractTextResult struct {
	Path     string   `json:"path"`
	Pages    []Page   `json:"pages"`
	Size     int64    `json:"size"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateFileResult represents the result of a PDF validation operation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Pages   int    `json:"pages,omitempty"`
	Message string `json:"message,omitempty"`
}
