package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/r-okamoto/explainer/internal/report"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return "format"
}

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatMarkdown, FormatPDF}
)

func newReportCommand() *cobra.Command {
	var (
		inputFile  string
		outputName string
	)
	format := FormatMarkdown
	command := &cobra.Command{
		Use:   "report",
		Short: "Explain a paragraph and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			explainer, openaiClient, err := newExplainer(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = openaiClient.Close()
			}()

			paragraph, err := readParagraphInput(inputFile)
			if err != nil {
				return err
			}

			result, err := explainer.Explain(cmd.Context(), paragraph)
			if err != nil {
				return fmt.Errorf("explainer.Explain() > %w", err)
			}

			name := outputName
			if name == "" {
				name = defaultReportName(inputFile)
			}

			writer := report.NewWriter(cfg.Outputs.ReportDirectory, cfg.Templates.ReportTemplate)
			markdownPath, err := writer.WriteMarkdown(name, report.Data{
				Paragraph:   strings.TrimSpace(paragraph),
				Model:       cfg.OpenAI.Model,
				GeneratedAt: time.Now(),
				Explanation: result,
			})
			if err != nil {
				return fmt.Errorf("writer.WriteMarkdown() > %w", err)
			}
			fmt.Printf("Report written to %s\n", markdownPath)

			if format == FormatPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVar(&inputFile, "in", "", "read the paragraph from a file ('-' for stdin)")
	flags.StringVar(&outputName, "name", "", "base name of the report file (default: derived from the input file)")
	flags.Var(&format, "format", fmt.Sprintf("Report format. Possible values are %v", allFormats))

	return command
}

func defaultReportName(inputFile string) string {
	if inputFile == "" || inputFile == "-" {
		return fmt.Sprintf("explanation-%s", time.Now().Format("20060102-150405"))
	}
	base := filepath.Base(inputFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
