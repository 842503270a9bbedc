package structured

import (
	"fmt"
	"strings"
)

// NormalizeToText flattens the heterogeneous content shapes the model
// provider returns (plain string, ordered content parts, single part map)
// into one string. Non-text parts such as images are ignored. It is
// idempotent and never panics; unknown shapes are stringified.
func NormalizeToText(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []any:
		var sb strings.Builder
		for _, item := range c {
			switch part := item.(type) {
			case string:
				sb.WriteString(part)
			case map[string]any:
				if text, ok := part["text"].(string); ok {
					sb.WriteString(text)
				}
			}
		}
		return sb.String()
	case map[string]any:
		if text, ok := c["text"].(string); ok {
			return text
		}
		return fmt.Sprintf("%v", c)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", c)
	}
}
