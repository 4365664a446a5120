package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON strips the markdown code fences models like to wrap JSON
// responses in, returning the raw JSON payload.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// Some models prepend prose before the payload. Recover by slicing
	// from the first opening brace/bracket to the last closing one.
	if !strings.HasPrefix(cleaned, "{") && !strings.HasPrefix(cleaned, "[") {
		objStart := strings.Index(cleaned, "{")
		arrStart := strings.Index(cleaned, "[")
		start := objStart
		if start == -1 || (arrStart != -1 && arrStart < start) {
			start = arrStart
		}
		if start != -1 {
			end := strings.LastIndexAny(cleaned, "}]")
			if end > start {
				cleaned = cleaned[start : end+1]
			}
		}
	}

	return cleaned
}

// GenerateJSON prompts the provider in JSON mode and unmarshals the response
// into out. The raw response is included in parse errors for debugging.
func GenerateJSON(ctx context.Context, provider LLMProvider, prompt string, out interface{}, opts ...Option) error {
	opts = append(opts, WithJSONMode())
	raw, err := provider.Generate(ctx, prompt, opts...)
	if err != nil {
		return err
	}

	cleaned := ExtractJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("parse error: %w | raw: %s", err, cleaned)
	}

	return nil
}
