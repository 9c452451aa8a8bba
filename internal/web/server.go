package web

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/edpsych-tools/reportgen/internal/config"
	"github.com/edpsych-tools/reportgen/internal/pdf"
	"github.com/edpsych-tools/reportgen/internal/report"
)

// uploadFileName is the name the uploaded report is stored under inside
// its job directory.
const uploadFileName = "upload.pdf"

// shutdownTimeout bounds how long in-flight requests may run during
// graceful shutdown.
const shutdownTimeout = 10 * time.Second

// artifactNames whitelists downloadable files per job.
var artifactNames = map[string]string{
	report.BandsFileName:     "application/pdf",
	report.NarrativeFileName: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Pipeline is the part of the report service the upload UI needs.
type Pipeline interface {
	ValidateFile(req pdf.ValidateFileRequest) (*pdf.ValidateFileResult, error)
	Generate(req report.GenerateRequest) (*report.GenerateResult, error)
}

// Server serves the upload form UI and the generated artifacts.
type Server struct {
	cfg      *config.Config
	pipeline Pipeline
	router   *mux.Router
	httpSrv  *http.Server
}

// NewServer creates the upload form server.
func NewServer(cfg *config.Config, pipeline Pipeline) (*Server, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline cannot be nil")
	}

	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		router:   mux.NewRouter(),
	}
	s.registerRoutes()

	s.httpSrv = &http.Server{
		Addr:              cfg.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/generate", s.handleGenerate).Methods("POST")
	s.router.HandleFunc("/download/{job}/{file}", s.handleDownload).Methods("GET")
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	log.Printf("Upload form available at http://%s/", s.cfg.Address())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, indexTemplate, nil)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize)
	if err := r.ParseMultipartForm(s.cfg.MaxFileSize); err != nil {
		s.renderError(w, http.StatusBadRequest, fmt.Sprintf("Could not read upload: %v", err))
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, "A score report PDF is required.")
		return
	}
	defer file.Close()

	jobID := uuid.NewString()
	jobDir := filepath.Join(s.cfg.WorkDir, jobID)
	if err := os.MkdirAll(jobDir, config.DefaultDirPerm); err != nil {
		s.renderError(w, http.StatusInternalServerError, fmt.Sprintf("Could not create job directory: %v", err))
		return
	}

	uploadPath := filepath.Join(jobDir, uploadFileName)
	if err := saveUpload(file, uploadPath); err != nil {
		s.renderError(w, http.StatusInternalServerError, fmt.Sprintf("Could not store upload: %v", err))
		return
	}

	validation, err := s.pipeline.ValidateFile(pdf.ValidateFileRequest{Path: uploadPath})
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, fmt.Sprintf("Validation failed: %v", err))
		return
	}
	if !validation.Valid {
		s.renderError(w, http.StatusBadRequest,
			fmt.Sprintf("%s is not a readable PDF: %s", header.Filename, validation.Message))
		return
	}

	result, err := s.pipeline.Generate(report.GenerateRequest{
		Path:      uploadPath,
		OutputDir: jobDir,
		Commentary: report.Commentary{
			TestingObservation: r.FormValue("testing_observation"),
			PrimaryLanguage:    r.FormValue("primary_language"),
			VisionComment:      r.FormValue("vision_comment"),
			TeacherInput:       r.FormValue("teacher_input"),
		},
	})
	if err != nil {
		s.renderError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Error generating reports: %v", err))
		return
	}

	page := resultPage{
		StudentName: result.Admin.Name,
		Warnings:    result.Warnings,
	}
	if result.BandsPath != "" {
		page.BandsURL = fmt.Sprintf("/download/%s/%s", jobID, report.BandsFileName)
	}
	if result.NarrativePath != "" {
		page.NarrativeURL = fmt.Sprintf("/download/%s/%s", jobID, report.NarrativeFileName)
	}

	s.renderPage(w, resultTemplate, page)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	jobID, fileName := vars["job"], vars["file"]
	if _, err := uuid.Parse(jobID); err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	contentType, ok := artifactNames[fileName]
	if !ok {
		http.Error(w, "unknown artifact", http.StatusNotFound)
		return
	}

	path := filepath.Join(s.cfg.WorkDir, jobID, fileName)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	http.ServeFile(w, r, path)
}

func saveUpload(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return err
	}
	return out.Close()
}

func (s *Server) renderPage(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := errorTemplate.Execute(w, message); err != nil {
		log.Printf("render error page: %v", err)
	}
}
