package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edpsych-tools/reportgen/internal/band"
	"github.com/edpsych-tools/reportgen/internal/report"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	maxFileSize  = flag.Int64("max-file-size", 50*1024*1024, "Maximum PDF file size in bytes")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", pdfPath)
		os.Exit(1)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Extracting score report: %s\n\n", absPath)
	}

	service := report.NewService(report.Options{MaxFileSize: *maxFileSize})
	result, err := service.Extract(report.ExtractRequest{Path: absPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting report: %v\n", err)
		os.Exit(1)
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Report Extract - Pull structured score data out of a score report PDF")
	fmt.Println()
	fmt.Println("Reads a fixed-layout psychoeducational score report and prints the")
	fmt.Println("administrative record, the administered test list, and the oral language")
	fmt.Println("and achievement score tables with their classification bands.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format         Output format: text (default), json")
	fmt.Println("  -max-file-size  Maximum PDF file size in bytes (default 50MB)")
	fmt.Println("  -verbose        Enable verbose output")
	fmt.Println("  -help           Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  report-extract report.pdf")
	fmt.Println("  report-extract -format json report.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  report-extract [OPTIONS] <pdf_file>")
}

func outputResults(result *report.ExtractResult) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(result *report.ExtractResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *report.ExtractResult) error {
	fmt.Println("ADMINISTRATIVE RECORD")
	fmt.Println("=====================")
	printField("Name", result.Admin.Name)
	printField("School", result.Admin.School)
	printField("Date of Birth", result.Admin.DateOfBirth)
	printField("Teacher", result.Admin.Teacher)
	printField("Age", result.Admin.Age)
	printField("Grade", result.Admin.Grade)
	printField("Sex", result.Admin.Sex)
	fmt.Println()

	if len(result.Tests) > 0 {
		fmt.Println("TESTS ADMINISTERED")
		fmt.Println("==================")
		for _, test := range result.Tests {
			fmt.Printf("%s (%s)  %s\n", test.Date, test.Abbrev, test.Name)
		}
		fmt.Println()
	}

	printScoreTable(result.Oral)
	printScoreTable(result.Achievement)

	if len(result.Warnings) > 0 {
		fmt.Println("WARNINGS")
		fmt.Println("========")
		for _, warning := range result.Warnings {
			fmt.Printf("  %s\n", warning)
		}
		fmt.Println()
	}

	return nil
}

func printField(label, value string) {
	if value == "" {
		value = "(not found)"
	}
	fmt.Printf("%-15s %s\n", label+":", value)
}

func printScoreTable(table report.ScoreTable) {
	fmt.Println(table.Title)
	for range table.Title {
		fmt.Print("=")
	}
	fmt.Println()

	if len(table.Scores) == 0 {
		fmt.Println("(no scores recognized)")
		fmt.Println()
		return
	}

	for _, score := range table.Scores {
		fmt.Printf("%-40s SS %3d  PR %3d  %s\n",
			score.Name, score.SS, score.PR, band.Classify(float64(score.SS)).Label)
	}
	fmt.Println()
}
