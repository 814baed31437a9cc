package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r-okamoto/explainer/internal/cli"
)

func newExplainCommand() *cobra.Command {
	var inputFile string
	command := &cobra.Command{
		Use:   "explain",
		Short: "Explain a dense paragraph in plain English",
		Long: "Explain a dense paragraph in plain English. Without --in, an interactive\n" +
			"session starts where paragraphs are read from the terminal.",
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

			explainCLI := cli.NewExplainCLI(explainer, cfg.OpenAI.Model)
			if cmd.Flags().Changed("in") {
				paragraph, err := readParagraphInput(inputFile)
				if err != nil {
					return err
				}
				return explainCLI.ExplainOnce(cmd.Context(), paragraph)
			}

			fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)
			fmt.Println("Interactive explainer session started!")
			fmt.Println("Paste a paragraph and finish with an empty line. Type 'quit' to exit.")
			fmt.Println()
			return explainCLI.Run(cmd.Context())
		},
	}
	command.Flags().StringVar(&inputFile, "in", "", "read the paragraph from a file ('-' for stdin)")

	return command
}
