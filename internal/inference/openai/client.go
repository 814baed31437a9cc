package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/r-okamoto/explainer/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Created int64           `json:"created"`
	Model   string          `json:"model"`
	Choices []Choice        `json:"choices"`
	Usage   inference.Usage `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Explain implements the inference.Client interface
func (client *Client) Explain(
	ctx context.Context,
	params inference.ExplainRequest,
) (inference.ExplainResponse, error) {
	var result inference.ExplainResponse
	if err := retry.Do(
		func() error {
			response, err := client.explain(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.ExplainResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(params inference.ExplainRequest) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemInstruction},
			{Role: RoleUser, Content: buildUserMessage(params.Paragraph)},
		},
	}
}

func (client *Client) explain(
	ctx context.Context,
	params inference.ExplainRequest,
) (inference.ExplainResponse, error) {
	requestBody := client.getRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.ExplainResponse{}, &inference.RequestError{Err: fmt.Errorf("httpClient.Post > %w", err)}
	}
	if response.IsError() {
		return inference.ExplainResponse{}, &inference.RequestError{
			StatusCode: response.StatusCode(),
			Message:    response.String(),
		}
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.ExplainResponse{}, &inference.RequestError{
			Message: fmt.Sprintf("empty response body or choices: %s", response.String()),
		}
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	if content == "" {
		return inference.ExplainResponse{}, &inference.RequestError{
			Message: fmt.Sprintf("empty response content: %s", response.String()),
		}
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)

	return inference.ExplainResponse{
		Content: sanitizeContent(content),
		Usage:   responseBody.Usage,
	}, nil
}
