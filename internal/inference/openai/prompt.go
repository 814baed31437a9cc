package openai

import (
	"fmt"
	"strings"
)

// systemInstruction constrains the model to emit JSON only
const systemInstruction = "You are a careful rewriting model. " +
	"Output ONLY a single JSON object that follows the provided JSON Schema. " +
	"Do not include any text before or after the JSON."

// schemaText is the JSON Schema the model's response must satisfy. It is sent
// verbatim inside the user prompt; local validation mirrors the same constraints.
const schemaText = `{
  "title": "ExplainerOutput",
  "type": "object",
  "required": ["summary_sentences", "bullets", "vocab"],
  "properties": {
    "summary_sentences": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": { "type": "string" }
    },
    "bullets": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": { "type": "string" }
    },
    "vocab": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["term", "definition"],
        "properties": {
          "term": { "type": "string" },
          "definition": { "type": "string" }
        }
      }
    },
    "evidence_lines": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["bullet_index", "evidence"],
        "properties": {
          "bullet_index": { "type": "integer", "minimum": 0, "maximum": 4 },
          "evidence": { "type": "string" }
        }
      }
    }
  }
}`

func buildUserMessage(paragraph string) string {
	return fmt.Sprintf(`TASK
Rewrite the following dense paragraph into plain English without adding outside facts or opinions.

OUTPUT
Return ONE JSON object with:
- summary_sentences: exactly 3 sentences in plain English.
- bullets: exactly 5 short points, each drawn directly from the paragraph.
- vocab: exactly 3 items, each with "term" and "definition" taken from the paragraph.
- evidence_lines: OPTIONAL array of { bullet_index, evidence } pairs (only include if helpful).

RULES
- Neutral tone. No advice. No opinions.
- Keep sentences short and clear.
- Do not output anything outside the JSON object.
- Follow the JSON Schema exactly.

JSON SCHEMA
%s

PARAGRAPH
%s`, schemaText, strings.TrimSpace(paragraph))
}
