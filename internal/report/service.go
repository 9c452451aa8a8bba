package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/edpsych-tools/reportgen/internal/pdf"
	"github.com/edpsych-tools/reportgen/internal/render"
)

// Artifact file names written into the job output directory.
const (
	NarrativeFileName = "narrative.docx"
	BandsFileName     = "bands.pdf"
)

// Options configures a pipeline service.
type Options struct {
	MaxFileSize  int64
	TemplatePath string
	ImagePath    string
}

// Service runs the report pipeline: text extraction, section slicing,
// administrative and score parsing, band classification, and rendering.
type Service struct {
	reader    *pdf.Reader
	validator *pdf.Validator
	opts      Options
	now       func() time.Time
}

// NewService creates a pipeline service with all components
func NewService(opts Options) *Service {
	return &Service{
		reader:    pdf.NewReader(opts.MaxFileSize),
		validator: pdf.NewValidator(opts.MaxFileSize),
		opts:      opts,
		now:       time.Now,
	}
}

// ValidateFile checks that the uploaded file is a readable PDF.
func (s *Service) ValidateFile(req pdf.ValidateFileRequest) (*pdf.ValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}

// Extract pulls the administrative record, the administered test list and
// both score tables out of a score report PDF. Partial parse failures
// degrade to warnings; only an unreadable PDF or unrecognizable layout
// aborts.
func (s *Service) Extract(req ExtractRequest) (*ExtractResult, error) {
	text, err := s.reader.ExtractText(pdf.ExtractTextRequest{Path: req.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	result := &ExtractResult{
		Path:     req.Path,
		Warnings: text.Warnings,
	}

	lines := LinesUntil(text.Pages, StopPhrase)

	admin, tests, warnings := ParseAdministrative(lines)
	result.Admin = admin
	result.Tests = tests
	result.Warnings = append(result.Warnings, warnings...)

	if len(lines) <= ScoreStartIndex {
		return nil, fmt.Errorf("report too short: no score sections after administrative block")
	}

	oralLines, achieveLines, err := SplitScoreSections(lines[ScoreStartIndex:])
	if err != nil {
		return nil, fmt.Errorf("could not locate test sections: %w", err)
	}

	result.Oral = ScoreTable{
		Title:  OralTitle,
		Scores: OrderUppercaseFirst(ParseScores(oralLines)),
	}
	result.Achievement = ScoreTable{
		Title:  AchievementTitle,
		Scores: OrderUppercaseFirst(ParseScores(achieveLines)),
	}

	if len(result.Oral.Scores) == 0 {
		result.Warnings = append(result.Warnings, "no oral language scores recognized")
	}
	if len(result.Achievement.Scores) == 0 {
		result.Warnings = append(result.Warnings, "no achievement scores recognized")
	}

	return result, nil
}

// Generate runs Extract and renders both artifacts into req.OutputDir.
// A missing narrative template skips the DOCX with a warning, and a
// report with no recognizable score rows skips the band table PDF the
// same way.
func (s *Service) Generate(req GenerateRequest) (*GenerateResult, error) {
	extracted, err := s.Extract(ExtractRequest{Path: req.Path})
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Admin:    extracted.Admin,
		Warnings: extracted.Warnings,
	}

	if len(extracted.Oral.Scores) == 0 && len(extracted.Achievement.Scores) == 0 {
		result.Warnings = append(result.Warnings,
			"band table PDF skipped: no score rows to render")
	} else {
		bandsPath := filepath.Join(req.OutputDir, BandsFileName)
		warnings, err := render.BandTablePDF(
			[]render.Table{
				scoreTableToRenderTable(extracted.Oral),
				scoreTableToRenderTable(extracted.Achievement),
			},
			extracted.Admin.Name,
			s.now().Format(dateLayout),
			s.opts.ImagePath,
			bandsPath,
		)
		result.Warnings = append(result.Warnings, warnings...)
		if err != nil {
			return nil, fmt.Errorf("failed to render band tables: %w", err)
		}
		result.BandsPath = bandsPath
	}

	narrativePath := filepath.Join(req.OutputDir, NarrativeFileName)
	ctx := NarrativeContext(extracted, req.Commentary, s.now())
	if err := render.Narrative(s.opts.TemplatePath, narrativePath, ctx); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("narrative document skipped: %v", err))
	} else {
		result.NarrativePath = narrativePath
	}

	return result, nil
}

func scoreTableToRenderTable(table ScoreTable) render.Table {
	rows := make([]render.ScoreRow, 0, len(table.Scores))
	for _, s := range table.Scores {
		rows = append(rows, render.ScoreRow{Name: s.Name, SS: s.SS})
	}
	return render.Table{Title: table.Title, Rows: rows}
}
