package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Plain JSON object is returned unchanged",
			content: `{"bullets":["a"]}`,
			want:    `{"bullets":["a"]}`,
		},
		{
			name:    "json code fence is stripped",
			content: "```json\n{\"bullets\":[\"a\"]}\n```",
			want:    `{"bullets":["a"]}`,
		},
		{
			name:    "Bare code fence is stripped",
			content: "```\n{\"bullets\":[\"a\"]}\n```",
			want:    `{"bullets":["a"]}`,
		},
		{
			name:    "Prose around the object is trimmed",
			content: "Here is the result:\n{\"bullets\":[\"a\"]}\nHope this helps!",
			want:    `{"bullets":["a"]}`,
		},
		{
			name:    "Braces inside strings do not close the object",
			content: `{"bullets":["set {x} to {y}"],"vocab":[]}`,
			want:    `{"bullets":["set {x} to {y}"],"vocab":[]}`,
		},
		{
			name:    "Escaped quote inside a string",
			content: `{"bullets":["a \"quoted\" word"]}`,
			want:    `{"bullets":["a \"quoted\" word"]}`,
		},
		{
			name:    "Nested objects keep the full outer object",
			content: `{"vocab":[{"term":"x","definition":"y"}]}`,
			want:    `{"vocab":[{"term":"x","definition":"y"}]}`,
		},
		{
			name:    "Truncated object is returned as-is",
			content: `{"bullets":["a"`,
			want:    `{"bullets":["a"`,
		},
		{
			name:    "No object at all is returned as-is",
			content: "I cannot produce JSON for this.",
			want:    "I cannot produce JSON for this.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeContent(tc.content))
		})
	}
}
