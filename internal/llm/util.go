package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from an oracle response.
// Models wrap JSON in fences often enough, even when told not to, that
// every response passes through here before schema validation.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	// The opening fence may carry a language tag, fused ("```json") or
	// alone on the fence line ("```javascript\n").
	body = strings.TrimPrefix(body, "json")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		fenceLine := strings.TrimSpace(body[:idx])
		if fenceLine != "" && len(fenceLine) < 20 && !strings.ContainsAny(fenceLine, " {") {
			body = body[idx+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
