package main

import (
	"fmt"
	"io"
	"os"

	"github.com/r-okamoto/explainer/internal/config"
	"github.com/r-okamoto/explainer/internal/explanation"
	"github.com/r-okamoto/explainer/internal/inference/openai"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newExplainer(cfg *config.Config) (*explanation.Explainer, *openai.Client, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts)
	explainer, err := explanation.NewExplainer(openaiClient)
	if err != nil {
		_ = openaiClient.Close()
		return nil, nil, fmt.Errorf("explanation.NewExplainer() > %w", err)
	}
	return explainer, openaiClient, nil
}

// readParagraphInput reads the paragraph from a file, or from stdin when the
// path is "-" or empty.
func readParagraphInput(path string) (string, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return string(content), nil
}
