package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/r-okamoto/explainer/internal/explanation"
	"github.com/r-okamoto/explainer/internal/inference"
)

// errEnd signals the end of an interactive session
var errEnd = errors.New("session ended")

// ExplainCLI manages the interactive terminal session for explaining paragraphs
type ExplainCLI struct {
	explainer    *explanation.Explainer
	model        string
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewExplainCLI creates a new interactive explain CLI
func NewExplainCLI(explainer *explanation.Explainer, model string) *ExplainCLI {
	return &ExplainCLI{
		explainer:    explainer,
		model:        model,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run drives interactive sessions until the user quits or interrupts
func (cli *ExplainCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session reads one paragraph, explains it and renders the result.
// Errors from the explain cycle are shown to the user and do not end the
// session; only input stream errors propagate.
func (cli *ExplainCLI) Session(ctx context.Context) error {
	fmt.Fprintln(cli.stdoutWriter, "Paragraph (finish with an empty line, 'quit' to exit):")

	paragraph, err := cli.readParagraph()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading paragraph input: %w", err)
	}

	trimmed := strings.TrimSpace(paragraph)
	if trimmed == "quit" || trimmed == "exit" {
		fmt.Fprintln(cli.stdoutWriter, "Explainer session ended.")
		return errEnd
	}
	if trimmed == "" {
		fmt.Fprintln(cli.stdoutWriter, "Please paste a paragraph first.")
		return nil
	}

	fmt.Fprintf(cli.stdoutWriter, "Calling the model (%s)...\n", cli.model)
	result, err := cli.explainer.Explain(ctx, trimmed)
	if err != nil {
		cli.renderError(err)
		return nil
	}

	cli.renderExplanation(result)
	return nil
}

// ExplainOnce explains a single paragraph and renders the result. The error
// is rendered and returned so one-shot callers can set the exit code.
func (cli *ExplainCLI) ExplainOnce(ctx context.Context, paragraph string) error {
	result, err := cli.explainer.Explain(ctx, paragraph)
	if err != nil {
		cli.renderError(err)
		return err
	}

	cli.renderExplanation(result)
	return nil
}

// readParagraph collects input lines until an empty line ends the paragraph
func (cli *ExplainCLI) readParagraph() (string, error) {
	var lines []string
	for {
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && len(lines) > 0 {
				lines = append(lines, line)
				break
			}
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, strings.TrimRight(line, "\n"))
	}
	return strings.Join(lines, "\n"), nil
}

func (cli *ExplainCLI) renderExplanation(result explanation.Explanation) {
	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Summary (3 sentences)")
	for _, sentence := range result.SummarySentences {
		fmt.Fprintf(cli.stdoutWriter, "- %s\n", sentence)
	}

	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Key points (5 bullets)")
	for _, bullet := range result.Bullets {
		fmt.Fprintf(cli.stdoutWriter, "- %s\n", bullet)
	}

	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Vocabulary (3 terms)")
	for _, entry := range result.Vocab {
		_, _ = cli.italic.Fprintf(cli.stdoutWriter, "%s", entry.Term)
		fmt.Fprintf(cli.stdoutWriter, ": %s\n", entry.Definition)
	}

	if len(result.EvidenceLines) > 0 {
		fmt.Fprintln(cli.stdoutWriter)
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Evidence lines")
		for _, line := range result.EvidenceLines {
			fmt.Fprintf(cli.stdoutWriter, "%d. %s\n", line.BulletIndex+1, line.Evidence)
		}
	}
	fmt.Fprintln(cli.stdoutWriter)
}

func (cli *ExplainCLI) renderError(err error) {
	var validationErr *explanation.ValidationError
	var requestErr *inference.RequestError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintln(cli.stdoutWriter, "Couldn't produce a valid JSON result.")
		fmt.Fprintf(cli.stdoutWriter, "Details: %v\n", validationErr)
	case errors.As(err, &requestErr):
		fmt.Fprintln(cli.stdoutWriter, "OpenAI API request failed.")
		fmt.Fprintf(cli.stdoutWriter, "Details: %v\n", requestErr)
	default:
		fmt.Fprintf(cli.stdoutWriter, "Error: %v\n", err)
	}
	fmt.Fprintln(cli.stdoutWriter)
}
