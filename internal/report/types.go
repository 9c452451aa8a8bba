package report

// AdministrativeRecord holds the identity fields extracted from the top of
// the score report. Fields whose label line is absent stay empty.
type AdministrativeRecord struct {
	Name        string `json:"name"`
	School      string `json:"school"`
	DateOfBirth string `json:"date_of_birth"`
	Teacher     string `json:"teacher"`
	Age         string `json:"age"`
	Grade       string `json:"grade"`
	Sex         string `json:"sex"`
}

// AdministeredTest pairs a testing date and battery abbreviation with the
// full test name listed under TESTS ADMINISTERED.
type AdministeredTest struct {
	Date   string `json:"date"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

// TestScore is one recognized subtest or cluster score line.
type TestScore struct {
	Name string `json:"name"`
	SS   int    `json:"ss"`
	PR   int    `json:"pr"`
}

// ScoreTable groups the scores of one test battery section.
type ScoreTable struct {
	Title  string      `json:"title"`
	Scores []TestScore `json:"scores"`
}

// Commentary carries the freeform clinician inputs collected by the form.
type Commentary struct {
	TestingObservation string `json:"testing_observation"`
	PrimaryLanguage    string `json:"primary_language"`
	VisionComment      string `json:"vision_comment"`
	TeacherInput       string `json:"teacher_input"`
}

// Request Types

// ExtractRequest represents a request to extract the structured tables
// from a score report PDF.
type ExtractRequest struct {
	Path string `json:"path"`
}

// GenerateRequest represents a request to run the full pipeline and write
// both artifacts into OutputDir.
type GenerateRequest struct {
	Path       string     `json:"path"`
	OutputDir  string     `json:"output_dir"`
	Commentary Commentary `json:"commentary"`
}

// Response Types

// ExtractResult represents the structured data pulled from one report.
type ExtractResult struct {
	Path        string               `json:"path"`
	Admin       AdministrativeRecord `json:"admin"`
	Tests       []AdministeredTest   `json:"tests"`
	Oral        ScoreTable           `json:"oral"`
	Achievement ScoreTable           `json:"achievement"`
	Warnings    []string             `json:"warnings,omitempty"`
}

// GenerateResult represents the artifacts produced by a pipeline run.
// NarrativePath is empty when the template was unavailable.
type GenerateResult struct {
	NarrativePath string               `json:"narrative_path,omitempty"`
	BandsPath     string               `json:"bands_path"`
	Admin         AdministrativeRecord `json:"admin"`
	Warnings      []string             `json:"warnings,omitempty"`
}
