package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileMissing(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	result, err := validator.ValidateFile(ValidateFileRequest{Path: "/nonexistent/file.pdf"})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}

	if result.Valid {
		t.Error("expected missing file to be invalid")
	}
	if result.Message == "" {
		t.Error("expected a validation message for missing file")
	}
}

func TestValidateFileEmptyPath(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	result, err := validator.ValidateFile(ValidateFileRequest{Path: ""})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected empty path to be invalid")
	}
}

func TestValidateFileWrongExtension(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := validator.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected non-PDF extension to be invalid")
	}
}

func TestValidateFileEmpty(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := validator.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected empty file to be invalid")
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	validator := NewValidator(8)

	path := filepath.Join(t.TempDir(), "big.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 more than eight bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := validator.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected oversized file to be invalid")
	}
}

func TestValidateFileNotAPDF(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	// Right extension, wrong content: pdfcpu must reject the structure.
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("this is plain text"), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := validator.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile() unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("expected structurally invalid file to be rejected")
	}
}

func TestIsValidPDF(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	if validator.IsValidPDF("/nonexistent/file.pdf") {
		t.Error("expected IsValidPDF to be false for missing file")
	}
}

func TestReaderRejectsMissingFile(t *testing.T) {
	reader := NewReader(1024 * 1024)

	if _, err := reader.ExtractText(ExtractTextRequest{Path: "/nonexistent/file.pdf"}); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := reader.ExtractText(ExtractTextRequest{Path: ""}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestReaderRejectsDirectory(t *testing.T) {
	reader := NewReader(1024 * 1024)

	if _, err := reader.ExtractText(ExtractTextRequest{Path: t.TempDir()}); err == nil {
		t.Error("expected error for directory path")
	}
}
