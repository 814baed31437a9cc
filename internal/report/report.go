// Package report renders a validated explanation into a markdown report and
// optionally converts it to PDF.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"github.com/r-okamoto/explainer/internal/explanation"
)

// Data is the template input for one report
type Data struct {
	Paragraph   string
	Model       string
	GeneratedAt time.Time
	Explanation explanation.Explanation
}

// Writer renders explanation reports into a directory
type Writer struct {
	outputDirectory string
	templatePath    string
}

// NewWriter creates a report writer. templatePath may be empty, in which case
// the embedded template is used.
func NewWriter(outputDirectory, templatePath string) *Writer {
	return &Writer{
		outputDirectory: outputDirectory,
		templatePath:    templatePath,
	}
}

// Render produces the markdown content for the given report data
func (w *Writer) Render(data Data) (string, error) {
	tmpl, err := parseTemplateWithFallback(w.templatePath)
	if err != nil {
		return "", fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return buf.String(), nil
}

// WriteMarkdown renders the report and writes it under the output directory.
// Returns the path of the written file.
func (w *Writer) WriteMarkdown(name string, data Data) (string, error) {
	content, err := w.Render(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDirectory, err)
	}

	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	path := filepath.Join(w.outputDirectory, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
