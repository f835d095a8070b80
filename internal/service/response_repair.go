package service

import (
	"fmt"
	"net/http"
	"strings"
)

// ResponseRepairer normalizes raw model output into parseable JSON text. The
// heuristic is intentionally narrow: it only handles the markdown fencing and
// tail truncation observed from the upstream service. Keeping it behind an
// interface lets a stricter grammar-aware repair replace it later.
type ResponseRepairer interface {
	Repair(raw string) (string, error)
}

type fencedJSONRepairer struct{}

func NewFencedJSONRepairer() ResponseRepairer {
	return fencedJSONRepairer{}
}

func (fencedJSONRepairer) Repair(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if strings.HasPrefix(content, "```json") {
		content = content[7:]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-3]
	}
	content = strings.TrimSpace(content)

	// A response that does not close its object was cut off by the output
	// token cap; keep everything up to the last closing brace.
	if !strings.HasSuffix(content, "}") {
		lastBrace := strings.LastIndex(content, "}")
		if lastBrace <= 0 {
			snippet := raw
			if len(snippet) > 500 {
				snippet = snippet[:500] + "..."
			}
			return "", &GenerationError{
				Status:  http.StatusInternalServerError,
				Message: "Incomplete JSON response from AI",
				Details: fmt.Sprintf("Response was truncated. Try reducing the number of questions. Raw content: %s", snippet),
			}
		}
		content = content[:lastBrace+1]
	}

	return content, nil
}
