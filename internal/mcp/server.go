package mcp

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edpsych-tools/reportgen/internal/config"
	"github.com/edpsych-tools/reportgen/internal/pdf"
	"github.com/edpsych-tools/reportgen/internal/report"
)

// Server exposes the report pipeline as MCP tools over stdio.
type Server struct {
	config    *config.Config
	service   *report.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *report.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	validateTool := mcp.NewTool(
		"report_validate_file",
		mcp.WithDescription("Validate that a file is a readable score report PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the score report PDF"),
		),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidateFile)

	extractTool := mcp.NewTool(
		"report_extract_file",
		mcp.WithDescription("Extract the administrative record and subtest score tables from a score report PDF as JSON"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the score report PDF"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleExtractFile)

	generateTool := mcp.NewTool(
		"report_generate_file",
		mcp.WithDescription("Run the full pipeline on a score report PDF and write the narrative document and the band table report"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the score report PDF"),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory to write the artifacts into (defaults to the configured working directory)"),
		),
		mcp.WithString("testing_observation",
			mcp.Description("Clinician testing observations for the narrative"),
		),
		mcp.WithString("primary_language",
			mcp.Description("Student's primary language"),
		),
		mcp.WithString("vision_comment",
			mcp.Description("Vision/hearing screening comments"),
		),
		mcp.WithString("teacher_input",
			mcp.Description("Teacher commentary for the narrative"),
		),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerateFile)
}

// Run starts serving the stdio transport until the parent closes it.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting report MCP server in stdio mode")
		log.Printf("Working directory: %s", s.config.WorkDir)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

func (s *Server) handleValidateFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable (%d pages)", result.Path, result.Pages)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Extract(report.ExtractRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText, err := formatExtractResult(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleGenerateFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	outputDir := s.config.WorkDir
	if dir, ok := args["output_dir"].(string); ok && dir != "" {
		outputDir = dir
	}

	commentary := report.Commentary{}
	if v, ok := args["testing_observation"].(string); ok {
		commentary.TestingObservation = v
	}
	if v, ok := args["primary_language"].(string); ok {
		commentary.PrimaryLanguage = v
	}
	if v, ok := args["vision_comment"].(string); ok {
		commentary.VisionComment = v
	}
	if v, ok := args["teacher_input"].(string); ok {
		commentary.TeacherInput = v
	}

	result, err := s.service.Generate(report.GenerateRequest{
		Path:       path,
		OutputDir:  outputDir,
		Commentary: commentary,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := formatGenerateResult(result)
	return mcp.NewToolResultText(responseText), nil
}
