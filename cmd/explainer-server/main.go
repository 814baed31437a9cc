package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/r-okamoto/explainer/internal/config"
	"github.com/r-okamoto/explainer/internal/explanation"
	"github.com/r-okamoto/explainer/internal/inference/openai"
	"github.com/r-okamoto/explainer/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "explainer-server",
		Short:         "Plain-English explainer HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}

	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts)
	defer func() {
		_ = openaiClient.Close()
	}()

	explainer, err := explanation.NewExplainer(openaiClient)
	if err != nil {
		return fmt.Errorf("explanation.NewExplainer() > %w", err)
	}

	handler := server.NewExplainHandler(explainer, cfg.OpenAI.Model)
	mux := server.NewServeMux(handler)

	log.Printf("Starting server on %s", cfg.Server.Address)
	return http.ListenAndServe(
		cfg.Server.Address,
		corsMiddleware(cfg.Server.AllowedOrigin, h2c.NewHandler(mux, &http2.Server{})),
	)
}

func corsMiddleware(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
