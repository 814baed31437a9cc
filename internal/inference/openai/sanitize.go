package openai

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?is)^```(?:json)?\\s*|\\s*```$")

// sanitizeContent strips accidental markdown code fences from the model output
// and narrows it down to the first balanced JSON object, so that extra prose
// around the object does not break decoding downstream.
func sanitizeContent(content string) string {
	if strings.HasPrefix(content, "```") {
		content = codeFencePattern.ReplaceAllString(content, "")
	}
	return extractJSONObject(strings.TrimSpace(content))
}

// extractJSONObject returns the first complete top-level JSON object in
// content. Braces inside strings are ignored. If no complete object is found,
// the input is returned unchanged and the validator reports the parse failure.
func extractJSONObject(content string) string {
	firstBrace := -1
	braceCount := 0
	inString := false
	escapeNext := false

	for i, ch := range content {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}

		if !inString {
			switch ch {
			case '{':
				if firstBrace == -1 {
					firstBrace = i
				}
				braceCount++
			case '}':
				braceCount--
				if braceCount == 0 && firstBrace != -1 {
					return content[firstBrace : i+1]
				}
			}
		}
	}

	return content
}
